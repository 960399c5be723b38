package conftext

import (
	"fmt"
	"strings"
)

// unquote reads a quoted value starting at s[0] and returns the unescaped
// value and whatever follows the closing quote.
func unquote(s string) (string, string, error) {
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == Quote[0]:
			return sb.String(), s[i+1:], nil
		case c == Escape && i+1 < len(s):
			i++
			switch s[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				// \" and \\ plus unknown escapes keep the escaped byte
				sb.WriteByte(s[i])
			}
		default:
			sb.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("%w: %s", ErrUnterminatedString, s)
}

// quote produces the quoted, escaped form of s.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteString(Quote)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', Escape:
			sb.WriteByte(Escape)
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteString(Quote)
	return sb.String()
}

// needsQuoting reports whether an unquoted s would not read back as s.
func needsQuoting(s string) bool {
	return s == "" ||
		strings.TrimSpace(s) != s ||
		strings.HasPrefix(s, Quote) ||
		strings.ContainsAny(s, CommentPrefix+HashCommentPrefix+"\r\n")
}

// validSectionName reports whether name can appear as one segment of a
// section header.
func validSectionName(name string) bool {
	return name != "" &&
		strings.TrimSpace(name) == name &&
		!strings.ContainsAny(name, SectionOpen+SectionClose+SectionSeparator+Assignment+"\r\n")
}

// validLeafName reports whether name can appear on the left of an
// assignment.
func validLeafName(name string) bool {
	return name != "" &&
		strings.TrimSpace(name) == name &&
		!strings.ContainsAny(name, Assignment+"\r\n") &&
		!strings.HasPrefix(name, SectionOpen) &&
		!strings.HasPrefix(name, CommentPrefix) &&
		!strings.HasPrefix(name, HashCommentPrefix)
}
