package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullDomain(t *testing.T) {
	assert.Equal(t, 9, fullDomain(9).Count())
	assert.True(t, fullDomain(0).IsEmpty())
	assert.Equal(t, 64, fullDomain(64).Count())
}

func TestDomainRemoveAndHas(t *testing.T) {
	d := fullDomain(4)
	assert.True(t, d.Has(2))
	d = d.Remove(2)
	assert.False(t, d.Has(2))
	assert.Equal(t, 3, d.Count())
}

func TestDomainSingleton(t *testing.T) {
	d := singletonDomain(3)
	assert.True(t, d.IsSingleton())
	assert.Equal(t, 3, d.SingletonOffset())

	d2 := fullDomain(4)
	assert.False(t, d2.IsSingleton())
}

func TestDomainMinMax(t *testing.T) {
	d := emptyDomain()
	assert.Equal(t, -1, d.Min())
	assert.Equal(t, -1, d.Max())

	d = d.Union(singletonDomain(1)).Union(singletonDomain(5))
	assert.Equal(t, 1, d.Min())
	assert.Equal(t, 5, d.Max())
}

func TestDomainIterate(t *testing.T) {
	d := fullDomain(3)
	var seen []int
	d.Iterate(func(offset int) { seen = append(seen, offset) })
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestDomainIntersectUnion(t *testing.T) {
	a := singletonDomain(1).Union(singletonDomain(2))
	b := singletonDomain(2).Union(singletonDomain(3))
	assert.Equal(t, 1, a.Intersect(b).Count())
	assert.True(t, a.Intersect(b).Has(2))
	assert.Equal(t, 3, a.Union(b).Count())
}

func TestDomainComplement(t *testing.T) {
	d := singletonDomain(0)
	c := d.Complement(3)
	assert.False(t, c.Has(0))
	assert.True(t, c.Has(1))
	assert.True(t, c.Has(2))
}

func TestDomainFilterPred(t *testing.T) {
	d := fullDomain(5)
	filtered := d.FilterPred(func(offset int) bool { return offset%2 == 0 })
	assert.False(t, filtered.Has(0))
	assert.True(t, filtered.Has(1))
	assert.False(t, filtered.Has(2))
	assert.True(t, filtered.Has(3))
	assert.False(t, filtered.Has(4))
}

func TestDomainEqual(t *testing.T) {
	a := fullDomain(3)
	b := singletonDomain(0).Union(singletonDomain(1)).Union(singletonDomain(2))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.Remove(1)))
}
