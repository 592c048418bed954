package dove

import (
	"fmt"
	"strconv"
	"strings"
)

// extract turns the validated residual of a classified literal into the
// canonical component sequence, and reports whether an alpha marker was
// present. The residual must already match the branch grammar (see classify).
func extract(g grammar, rest string) ([]int64, bool, error) {
	if g == directDotted {
		return extractDotted(rest)
	}

	return extractDecimal(rest)
}

// extractDotted splits on every dot; the alpha "_" in the final segment
// acts as one more separator, so "1.2_3" yields [1, 2, 3] with alpha set.
// Segment values are taken literally, without re-padding.
func extractDotted(rest string) ([]int64, bool, error) {
	alpha := false
	if i := strings.IndexByte(rest, '_'); i >= 0 {
		alpha = true
		rest = rest[:i] + "." + rest[i+1:]
	}

	segs := strings.Split(rest, ".")
	parts := make([]int64, len(segs))
	for i, seg := range segs {
		n, err := parseComponent(seg)
		if err != nil {
			return nil, false, err
		}
		parts[i] = n
	}

	return parts, alpha, nil
}

// extractDecimal applies the grouping transform: the fractional digit run
// (alpha marker removed, digit order kept) is right-padded with zeros to a
// multiple of three and split into 3-digit groups, each parsed as one
// component. "1.0023" pads to "002300" and yields [1, 2, 300].
func extractDecimal(rest string) ([]int64, bool, error) {
	intPart, frac, _ := strings.Cut(rest, ".")

	alpha := false
	if i := strings.IndexByte(frac, '_'); i >= 0 {
		alpha = true
		frac = frac[:i] + frac[i+1:]
	}

	n, err := parseComponent(intPart)
	if err != nil {
		return nil, false, err
	}
	parts := make([]int64, 0, 1+(len(frac)+2)/3)
	parts = append(parts, n)

	if pad := len(frac) % 3; pad != 0 {
		frac += strings.Repeat("0", 3-pad)
	}
	for i := 0; i < len(frac); i += 3 {
		g, err := parseComponent(frac[i : i+3])
		if err != nil {
			return nil, false, err
		}
		parts = append(parts, g)
	}

	return parts, alpha, nil
}

// parseComponent parses a validated digit run. Leading zeros are fine
// ("020" -> 20); the only possible failure is int64 overflow, which is
// surfaced as a malformed literal rather than silently truncated.
func parseComponent(seg string) (int64, error) {
	n, err := strconv.ParseInt(seg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: component %q out of range", ErrMalformed, seg)
	}

	return n, nil
}
