package utils

import "strconv"

// FormatWon formata um valor em won com separador de milhar (1234567 -> "1,234,567")
func FormatWon(v int64) string {
	s := strconv.FormatInt(v, 10)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
