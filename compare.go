package dove

import (
	"fmt"
	"strconv"
)

// Compare returns -1, 0, or +1 ordering v against w.
//
// The shorter component sequence is treated as zero-extended on the right,
// so "v1.2" equals "v1.2.0". When all components match, an alpha version
// orders strictly below the non-alpha one; it is a pre-release of the
// version named by its components. Neither the qv flag nor the original
// literal affects the result.
func (v Version) Compare(w Version) int {
	a, b := v.components(), w.components()

	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		var av, bv int64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}

	if v.alpha != w.alpha {
		if v.alpha {
			return -1
		}

		return 1
	}

	return 0
}

// Less reports v < w.
func (v Version) Less(w Version) bool { return v.Compare(w) < 0 }

// LessOrEqual reports v <= w.
func (v Version) LessOrEqual(w Version) bool { return v.Compare(w) <= 0 }

// Equal reports structural equality: same components and alpha flag.
func (v Version) Equal(w Version) bool { return v.Compare(w) == 0 }

// GreaterOrEqual reports v >= w.
func (v Version) GreaterOrEqual(w Version) bool { return v.Compare(w) >= 0 }

// Greater reports v > w.
func (v Version) Greater(w Version) bool { return v.Compare(w) > 0 }

// Compare orders v against an arbitrary operand, coercing it through the
// regular parse pipeline first. Strings and numbers follow the same
// classification rules as Parse, which is where the documented surprises
// live: Compare(MustParse("v0.95.0"), 0.96) is -1 because 0.96 groups to
// components [0, 960].
func Compare(v Version, operand any) (int, error) {
	w, err := Coerce(operand)
	if err != nil {
		return 0, err
	}

	return v.Compare(w), nil
}

// Coerce reduces an operand to a Version. Accepted kinds: Version,
// *Version, Literal, string, float64/float32, and the common integer types.
// Anything else fails with ErrUnsupportedCoercion; a reducible operand with
// malformed content fails with ErrMalformed.
func Coerce(operand any) (Version, error) {
	switch x := operand.(type) {
	case Version:
		return x, nil
	case *Version:
		if x == nil {
			return Version{}, fmt.Errorf("%w: nil *Version", ErrUnsupportedCoercion)
		}

		return *x, nil
	case Literal:
		return ParseLiteral(x)
	case string:
		return Parse(x)
	case float64:
		return ParseLiteral(Number(x))
	case float32:
		return ParseLiteral(Number(float64(x)))
	case int:
		return Parse(strconv.FormatInt(int64(x), 10))
	case int64:
		return Parse(strconv.FormatInt(x, 10))
	case uint:
		return Parse(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return Parse(strconv.FormatUint(x, 10))
	default:
		return Version{}, fmt.Errorf("%w: %T", ErrUnsupportedCoercion, operand)
	}
}
