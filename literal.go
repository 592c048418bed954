package dove

import "strconv"

// Literal is a tagged version literal: either raw text or a native number.
// Both kinds flow through the same classification rules, so Number(0.96)
// parses exactly like Text("0.96"). The tag is retained only as metadata;
// behavior is dictated by the literal's content.
type Literal struct {
	text    string
	numeric bool
}

// Text wraps a textual literal.
func Text(s string) Literal {
	return Literal{text: s}
}

// Number wraps a native numeric literal. The number is rendered in plain
// decimal notation (never exponent form), so it classifies as a decimal
// version: Number(0.96) yields components [0, 960].
func Number(f float64) Literal {
	return Literal{text: strconv.FormatFloat(f, 'f', -1, 64), numeric: true}
}

// String returns the literal text as it will be classified.
func (l Literal) String() string {
	return l.text
}

// IsNumeric reports whether the literal came from a native number.
func (l Literal) IsNumeric() bool {
	return l.numeric
}
