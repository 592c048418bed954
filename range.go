package dove

import "fmt"

// Range bounds a set of versions. Min and Max are ordinary literals in
// either encoding; an empty bound is open. Bounds are inclusive unless the
// matching Exclusive flag is set.
//
// Alpha ordering applies at the bounds too: with Min "v1.2.3" inclusive,
// the pre-release "v1.2_3" is below the floor and excluded.
type Range struct {
	// Min is the lower bound literal.
	Min string

	// Max is the upper bound literal.
	Max string

	// MinExclusive excludes the lower bound itself.
	MinExclusive bool

	// MaxExclusive excludes the upper bound itself.
	MaxExclusive bool
}

// Enabled reports whether the range restricts anything.
func (r Range) Enabled() bool {
	return r.Min != "" || r.Max != ""
}

// Contains reports whether v lies within the range. Fails on a malformed
// bound literal.
func (r Range) Contains(v Version) (bool, error) {
	if r.Min != "" {
		floor, err := Parse(r.Min)
		if err != nil {
			return false, fmt.Errorf("range min: %w", err)
		}
		cmp := v.Compare(floor)
		if cmp < 0 || (r.MinExclusive && cmp == 0) {
			return false, nil
		}
	}

	if r.Max != "" {
		ceil, err := Parse(r.Max)
		if err != nil {
			return false, fmt.Errorf("range max: %w", err)
		}
		cmp := v.Compare(ceil)
		if cmp > 0 || (r.MaxExclusive && cmp == 0) {
			return false, nil
		}
	}

	return true, nil
}

// Clip keeps the literals that parse and fall within the range, preserving
// input order. Malformed entries are dropped; a malformed bound fails the
// whole call.
func Clip(in []string, r Range) ([]string, error) {
	if !r.Enabled() {
		return in, nil
	}

	out := make([]string, 0, len(in))
	for _, s := range in {
		v, err := Parse(s)
		if err != nil {
			continue
		}
		ok, err := r.Contains(v)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, s)
		}
	}

	return out, nil
}
