package parser

// columnIndex converts a cell reference's alphabetic prefix to a zero-based
// column index ("A" -> 0, "Z" -> 25, "AA" -> 26). Non-letter characters end
// the prefix. Returns -1 when ref carries no column letters.
func columnIndex(ref string) int {
	value := 0
	seen := false
	for _, ch := range ref {
		if ch < 'A' || ch > 'Z' {
			break
		}
		value = value*26 + int(ch-'A'+1)
		seen = true
	}
	if !seen {
		return -1
	}
	return value - 1
}
