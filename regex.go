package dove

import "regexp"

var (
	// Dotted residual (leading "v" already stripped): dot-separated digit
	// runs with an optional "_digits" alpha tail on the final segment.
	// A single bare segment is tolerated for v-prefixed shorthand ("v1").
	dottedRe = regexp.MustCompile(`^\d+(?:\.\d+)*(?:_\d+)?$`)

	// Decimal residual: integer part, optional single fraction, optional
	// alpha marker inside the fractional digit run.
	decimalRe = regexp.MustCompile(`^\d+(?:\.\d+(?:_\d+)?)?$`)
)
