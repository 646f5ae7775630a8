package syntax

import (
	"strconv"
	"strings"
)

// Unquote strips the single quotes from an ANTLR string literal and resolves
// escape sequences. Text which is not quoted is returned unchanged.
//
//    Unquote(`'it\'s'`)   // => it's
//
func Unquote(lit string) string {
	if len(lit) < 2 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return lit
	}
	lit = lit[1 : len(lit)-1]
	if !strings.ContainsRune(lit, '\\') {
		return lit
	}
	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		if c != '\\' || i+1 == len(lit) {
			b.WriteByte(c)
			continue
		}
		i++
		switch lit[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			if i+4 < len(lit) {
				if r, err := strconv.ParseUint(lit[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(r))
					i += 4
					continue
				}
			}
			b.WriteByte('u')
		default: // \' \\ and anything else
			b.WriteByte(lit[i])
		}
	}
	return b.String()
}
