package dove

import (
	"strconv"
	"strings"
)

// Normal renders the canonical dotted form: "v" plus every component as a
// plain decimal integer joined by dots, zero-padded on the right to at
// least three components. An alpha version gets its "_" delimiter in place
// of the dot before the final real component; padding is appended after it,
// so MustParse("1.2_3").Normal() is "v1_230.0".
func (v Version) Normal() string {
	parts := v.components()

	var b strings.Builder
	b.WriteByte('v')
	b.WriteString(strconv.FormatInt(parts[0], 10))
	for i := 1; i < len(parts); i++ {
		if v.alpha && i == len(parts)-1 {
			b.WriteByte('_')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatInt(parts[i], 10))
	}
	for n := len(parts); n < 3; n++ {
		b.WriteString(".0")
	}

	return b.String()
}

// Numify renders the canonical decimal form: the inverse of the grouping
// transform. Every component after the first is zero-padded to exactly
// three digits and concatenated into the fractional run, then trailing
// zeros are stripped; an empty run degenerates to the bare integer. The
// alpha marker does not appear; it is a flag queried via IsAlpha, not part
// of the decimal value.
func (v Version) Numify() string {
	parts := v.components()

	head := strconv.FormatInt(parts[0], 10)
	if len(parts) == 1 {
		return head
	}

	var b strings.Builder
	for _, p := range parts[1:] {
		s := strconv.FormatInt(p, 10)
		for n := len(s); n < 3; n++ {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}

	frac := strings.TrimRight(b.String(), "0")
	if frac == "" {
		return head
	}

	return head + "." + frac
}

// String reproduces the source literal when one is carried (a leading "V"
// is normalized to "v"). A Version built structurally rather than parsed
// has no literal to return; it falls back to Normal for qv values and
// Numify otherwise.
func (v Version) String() string {
	if v.orig != "" {
		if v.orig[0] == 'V' {
			return "v" + v.orig[1:]
		}

		return v.orig
	}

	if v.qv {
		return v.Normal()
	}

	return v.Numify()
}
