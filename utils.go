package dove

// trimV strips a single leading "v" or "V" and reports whether one was
// present. A second "v" is left for the grammar check to reject.
func trimV(s string) (string, bool) {
	if s != "" && (s[0] == 'v' || s[0] == 'V') {
		return s[1:], true
	}

	return s, false
}

// capStrings returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capStrings(out []string, limit int) []string {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}
