package common

import (
	"strconv"
	"strings"
)

// HexLiteral formats v as an unpadded uppercase C hex literal, e.g. 0x1A2B.
func HexLiteral(v uint64) string {
	return "0x" + strings.ToUpper(strconv.FormatUint(v, 16))
}

// StringLiteral quotes s as a C/C++ string literal. Quotes, backslashes and
// control bytes are escaped; everything else is copied byte for byte.
func StringLiteral(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				// octal escapes stop after three digits, unlike \x
				sb.WriteByte('\\')
				sb.WriteString(padOctal(c))
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func padOctal(c byte) string {
	o := strconv.FormatUint(uint64(c), 8)
	return strings.Repeat("0", 3-len(o)) + o
}
