package dove

import (
	"reflect"
	"testing"
)

func TestTrimV(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		wantRest string
		wantHad  bool
	}{
		{"v1.2.3", "1.2.3", true},
		{"V1.2.3", "1.2.3", true},
		{"1.2.3", "1.2.3", false},
		{"v", "", true},
		{"", "", false},
		{"vv1", "v1", true}, // second v is left for the grammar to reject
	}

	for _, tc := range cases {
		rest, had := trimV(tc.in)
		if rest != tc.wantRest || had != tc.wantHad {
			t.Fatalf("trimV(%q) = (%q, %v); want (%q, %v)",
				tc.in, rest, had, tc.wantRest, tc.wantHad)
		}
	}
}

func TestCapStrings(t *testing.T) {
	t.Parallel()

	in := []string{"a", "b", "c"}

	if got := capStrings(in, 2); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("capStrings(in, 2) = %v", got)
	}
	if got := capStrings(in, 0); !reflect.DeepEqual(got, in) {
		t.Fatalf("capStrings(in, 0) = %v", got)
	}
	if got := capStrings(in, 5); !reflect.DeepEqual(got, in) {
		t.Fatalf("capStrings(in, 5) = %v", got)
	}
}
