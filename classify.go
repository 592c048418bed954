package dove

import (
	"fmt"
	"strings"
)

// grammar selects which of the two literal encodings applies.
type grammar int

const (
	// decimalGrouped is a plain number or one-dot decimal string; its
	// fraction is split into 3-digit component groups.
	decimalGrouped grammar = iota
	// directDotted is a multi-component identifier; every dot-separated
	// segment is one component, taken literally.
	directDotted
)

// classify inspects a literal, picks the grammar branch, and validates the
// residual text against that branch. It returns the grammar, the residual
// (leading "v" consumed), and whether a leading "v" was present.
//
// The dotted branch is selected iff the literal starts with "v"/"V" or
// contains two or more dots; everything else is decimal.
func classify(lit Literal) (grammar, string, bool, error) {
	s := lit.String()
	if s == "" {
		return 0, "", false, fmt.Errorf("%w: empty literal", ErrMalformed)
	}

	rest, hadV := trimV(s)
	if rest == "" {
		return 0, "", false, fmt.Errorf("%w: %q has no digits", ErrMalformed, s)
	}

	g := decimalGrouped
	if hadV || strings.Count(rest, ".") >= 2 {
		g = directDotted
	}

	re := decimalRe
	if g == directDotted {
		re = dottedRe
	}
	if !re.MatchString(rest) {
		return 0, "", false, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	return g, rest, hadV, nil
}
