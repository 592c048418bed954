package dove

// Version is an immutable parsed version. It holds the canonical component
// sequence plus two flags: qv (dotted-decimal identity, governs default
// rendering) and alpha (pre-release marker). The original literal is kept
// for round-trip rendering only; it never participates in comparison.
//
// The zero Version is valid and equivalent to Parse("0").
type Version struct {
	parts []int64
	orig  string
	qv    bool
	alpha bool
}

// Parse classifies a textual literal and builds a Version. The literal's
// content decides the encoding: a leading "v" or two-plus dots means dotted,
// anything else is decimal (see package docs for the grouping transform).
func Parse(s string) (Version, error) {
	return ParseLiteral(Text(s))
}

// ParseLiteral is Parse over the tagged literal union, accepting native
// numbers via Number.
func ParseLiteral(lit Literal) (Version, error) {
	return build(lit, false)
}

// Declare parses like Parse but forces the dotted-decimal identity: the
// result always has IsQV() == true, even when the literal itself classifies
// as decimal. Classification and component extraction are unchanged, so
// Declare("1.2") still groups to components [1, 200].
func Declare(s string) (Version, error) {
	return DeclareLiteral(Text(s))
}

// DeclareLiteral is Declare over the tagged literal union.
func DeclareLiteral(lit Literal) (Version, error) {
	return build(lit, true)
}

// MustParse is Parse that panics on malformed input. For literals in tests
// and package-level variables.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

func build(lit Literal, declared bool) (Version, error) {
	g, rest, _, err := classify(lit)
	if err != nil {
		return Version{}, err
	}

	parts, alpha, err := extract(g, rest)
	if err != nil {
		return Version{}, err
	}

	return Version{
		parts: parts,
		orig:  lit.String(),
		qv:    declared || g == directDotted,
		alpha: alpha,
	}, nil
}

// zeroParts backs the zero Version so accessors never see an empty sequence.
var zeroParts = []int64{0}

// components returns the backing sequence, mapping the zero Version to [0].
func (v Version) components() []int64 {
	if len(v.parts) == 0 {
		return zeroParts
	}

	return v.parts
}

// Components returns a copy of the component sequence, most significant
// first. Length is always >= 1.
func (v Version) Components() []int64 {
	return append([]int64(nil), v.components()...)
}

// IsAlpha reports whether the source literal carried an alpha marker.
func (v Version) IsAlpha() bool {
	return v.alpha
}

// IsQV reports whether the version carries the dotted-decimal identity,
// either from classification or from Declare.
func (v Version) IsQV() bool {
	return v.qv
}
