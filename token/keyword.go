package token

// isKeyWordPrefix reports whether d starts with the keyword pre as a whole
// word.
func isKeyWordPrefix(d []byte, pre string) bool {
	if len(d) < len(pre) {
		return false
	}
	for i := range len(pre) {
		if d[i] != pre[i] {
			return false
		}
	}
	if len(d) == len(pre) {
		return true
	}
	return !isIdentChar(d[len(pre)])
}
