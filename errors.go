package dove

import "errors"

var (
	// ErrMalformed reports a literal that matches neither the dotted nor the
	// decimal grammar (bad character, misplaced "_", empty digit run,
	// duplicated leading "v"). Parse and Declare never coerce such input to
	// a default value.
	ErrMalformed = errors.New("malformed version literal")

	// ErrUnsupportedCoercion reports a comparison operand that cannot be
	// reduced to a version literal at all.
	ErrUnsupportedCoercion = errors.New("unsupported coercion to version")
)
