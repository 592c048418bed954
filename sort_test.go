package dove

import (
	"reflect"
	"testing"
)

func TestSort(t *testing.T) {
	t.Parallel()

	in := []string{"0.96", "v0.95.0", "v1.2_3", "v1.2.3", "1.0023", "2"}

	asc := Sort(append([]string(nil), in...), SortAsc)
	wantAsc := []string{"v0.95.0", "0.96", "v1.2_3", "v1.2.3", "1.0023", "2"}
	if !reflect.DeepEqual(asc, wantAsc) {
		t.Fatalf("Sort asc = %v; want %v", asc, wantAsc)
	}

	desc := Sort(append([]string(nil), in...), SortDesc)
	wantDesc := []string{"2", "1.0023", "v1.2.3", "v1.2_3", "0.96", "v0.95.0"}
	if !reflect.DeepEqual(desc, wantDesc) {
		t.Fatalf("Sort desc = %v; want %v", desc, wantDesc)
	}

	none := Sort(append([]string(nil), in...), SortNone)
	if !reflect.DeepEqual(none, in) {
		t.Fatalf("Sort none = %v; want input order %v", none, in)
	}
}

func TestSortTiesAreDeterministic(t *testing.T) {
	t.Parallel()

	// "1.2" and "v1.200.0" are structurally equal; ties fall back to the
	// original string.
	got := Sort([]string{"v1.200.0", "1.2"}, SortAsc)
	want := []string{"1.2", "v1.200.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sort tie = %v; want %v", got, want)
	}
}

func TestSortLexFallback(t *testing.T) {
	t.Parallel()

	// One malformed entry switches the whole sort to lexicographic.
	got := Sort([]string{"v1.2.3", "banana", "0.96"}, SortAsc)
	want := []string{"0.96", "banana", "v1.2.3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sort with junk = %v; want lex %v", got, want)
	}
}

func TestSortN(t *testing.T) {
	t.Parallel()

	in := []string{"1.2", "3", "0.5"}

	got := SortN(append([]string(nil), in...), SortDesc, 2)
	want := []string{"3", "1.2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SortN = %v; want %v", got, want)
	}

	if got := SortN(append([]string(nil), in...), SortDesc, 0); len(got) != 3 {
		t.Fatalf("SortN limit 0 = %v; want all 3", got)
	}
}
