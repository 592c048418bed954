package dove

import (
	"math/rand"
	"strconv"
	"testing"
)

// Global sinks to avoid compiler eliminating results.
var (
	benchVersion Version
	benchInt     int
	benchStr     []string
)

// makeLiterals generates a mixed dataset: dotted identifiers, decimals with
// long fractional runs, alpha markers, and plain integers. Deterministic.
func makeLiterals(n int) []string {
	r := rand.New(rand.NewSource(1))
	out := make([]string, n)

	for i := 0; i < n; i++ {
		switch x := r.Intn(100); {
		case x < 45: // dotted X.Y.Z with optional leading "v" and alpha tail
			s := strconv.Itoa(r.Intn(20)) + "." + strconv.Itoa(r.Intn(300)) + "." + strconv.Itoa(r.Intn(50))
			if r.Intn(100) < 20 {
				s += "_" + strconv.Itoa(r.Intn(10))
			}
			if r.Intn(2) == 0 {
				s = "v" + s
			}
			out[i] = s

		case x < 85: // decimal with a 1..9 digit fractional run
			frac := strconv.Itoa(1 + r.Intn(999999999))
			out[i] = strconv.Itoa(r.Intn(20)) + "." + frac

		default: // bare integer
			out[i] = strconv.Itoa(r.Intn(3000))
		}
	}

	return out
}

func BenchmarkParse(b *testing.B) {
	lits := makeLiterals(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := Parse(lits[i%len(lits)])
		if err != nil {
			b.Fatal(err)
		}
		benchVersion = v
	}
}

func BenchmarkCompare(b *testing.B) {
	lits := makeLiterals(1000)
	vs := make([]Version, len(lits))
	for i, s := range lits {
		vs[i] = MustParse(s)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchInt = vs[i%len(vs)].Compare(vs[(i+1)%len(vs)])
	}
}

func BenchmarkNormal(b *testing.B) {
	vs := make([]Version, 0, 1000)
	for _, s := range makeLiterals(1000) {
		vs = append(vs, MustParse(s))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchStr = append(benchStr[:0], vs[i%len(vs)].Normal())
	}
}

func BenchmarkSort(b *testing.B) {
	lits := makeLiterals(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in := append([]string(nil), lits...)
		benchStr = Sort(in, SortDesc)
	}
}
