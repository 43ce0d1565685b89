package solver

import "fmt"

// ParseGivens parses the givens mini-language (§6): a fixed-length string,
// one character per cell in index order, where a digit '1'-'9' designates a
// given at that cell and '.' or '0' means the cell starts unset. It is an
// ingestion helper, not part of the core engine; callers add the returned
// constraints to p themselves.
func ParseGivens(p *Puzzle, s string) ([]*GivenConstraint, error) {
	if len(s) != p.N() {
		return nil, fmt.Errorf("givens: length %d, want %d: %w", len(s), p.N(), ErrInvalidGivens)
	}
	var out []*GivenConstraint
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '.' || ch == '0':
			continue
		case ch >= '1' && ch <= '9':
			gc, err := NewGivenConstraint(p, i, int(ch-'0'))
			if err != nil {
				return nil, fmt.Errorf("givens: cell %d: %w", i, err)
			}
			out = append(out, gc)
		default:
			return nil, fmt.Errorf("givens: cell %d: unexpected character %q: %w", i, ch, ErrInvalidGivens)
		}
	}
	return out, nil
}
