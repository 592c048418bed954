/*
Package dove (Dotted Or decimal Version Encoding) provides a single version
value type that unifies two historically incompatible textual encodings:
a plain decimal number ("1.0023") and a dotted multi-component identifier
("v1.2.300"). Both encodings parse into the same immutable Version, so
callers can compare and sort versions from mixed sources without caring
which form the author chose.

Grammar notes:
  - A literal starting with "v"/"V", or containing two or more dots, is
    parsed as a dotted identifier: every dot-separated segment becomes one
    integer component.
  - Anything else is a plain decimal: the fractional digit run is zero-padded
    on the right to a multiple of three and split into 3-digit groups, so
    "1.2" means [1, 200] and "1.002003" means [1, 2, 3].
  - A single "_" in the final segment marks an alpha (pre-release) version.
    An alpha version orders strictly below the release with the same
    components.

Rendering:
  - Normal() gives the canonical dotted form, at least three components
    ("v1.200.0").
  - Numify() gives the canonical decimal form with trailing fractional
    zeros stripped ("1.2").
  - String() reproduces the original literal when one is carried, and
    falls back to Numify or Normal otherwise.

Usage example:

	a := dove.MustParse("v0.95.0")
	b := dove.MustParse("0.96") // decimal: components [0, 960]

	fmt.Println(a.Less(b))       // true: 95 < 960
	fmt.Println(b.Normal())      // v0.960.0
	fmt.Println(b.Numify())      // 0.96
	fmt.Println(b.IsQV())        // false

	d, _ := dove.Declare("1.2") // force dotted-decimal identity
	fmt.Println(d.Normal())     // v1.200.0
	fmt.Println(d.IsQV())       // true

The package is computation-only: no I/O, no shared state. Version values
are immutable and safe to copy and share across goroutines.
*/
package dove
