package dove

// Latest returns the greatest version among the given literals under the
// package ordering. Malformed entries are skipped; ok is false when nothing
// parses. The first of several structurally equal maxima wins.
func Latest(in []string) (Version, bool) {
	return pick(in, func(cand, best Version) bool { return cand.Greater(best) })
}

// Oldest returns the least version among the given literals. Same skipping
// and tie rules as Latest.
func Oldest(in []string) (Version, bool) {
	return pick(in, func(cand, best Version) bool { return cand.Less(best) })
}

func pick(in []string, better func(cand, best Version) bool) (Version, bool) {
	var best Version
	found := false

	for _, s := range in {
		v, err := Parse(s)
		if err != nil {
			continue
		}
		if !found || better(v, best) {
			best = v
			found = true
		}
	}

	return best, found
}
