package strutil

import "strings"

func LStripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// CutHeader splits a header value into the value itself and its parameters, if any.
// Whitespaces between the separator and the first parameter are stripped.
func CutHeader(header string) (value, params string) {
	sep := strings.IndexByte(header, ';')
	if sep == -1 {
		return header, ""
	}

	return header[:sep], LStripWS(header[sep+1:])
}

// Unquote strips surrounding double quotes and resolves the \" and \\ escapes. Any other
// backslash is kept as is, as browsers don't escape them in filenames.
func Unquote(str string) string {
	if len(str) > 1 && str[0] == '"' && str[len(str)-1] == '"' {
		return unescape(str[1 : len(str)-1])
	}

	return str
}

func unescape(str string) string {
	if strings.IndexByte(str, '\\') == -1 {
		return str
	}

	var b strings.Builder
	b.Grow(len(str))

	for i := 0; i < len(str); i++ {
		if isEscape(str, i) {
			i++
		}

		b.WriteByte(str[i])
	}

	return b.String()
}

func isEscape(str string, i int) bool {
	return str[i] == '\\' && i+1 < len(str) && (str[i+1] == '"' || str[i+1] == '\\')
}

// Quote returns the string as is if it's a valid token, otherwise wraps it into double
// quotes, escaping quotes and backslashes.
func Quote(str string) string {
	if IsToken(str) {
		return str
	}

	var b strings.Builder
	b.Grow(len(str) + 2)
	b.WriteByte('"')

	for i := 0; i < len(str); i++ {
		if str[i] == '"' || str[i] == '\\' {
			b.WriteByte('\\')
		}

		b.WriteByte(str[i])
	}

	b.WriteByte('"')

	return b.String()
}

// IsToken reports whether the string is a non-empty RFC 2045 token.
func IsToken(str string) bool {
	if len(str) == 0 {
		return false
	}

	for i := 0; i < len(str); i++ {
		if !tokenChars[str[i]] {
			return false
		}
	}

	return true
}

var tokenChars = func() (table [256]bool) {
	for c := '!'; c <= '~'; c++ {
		table[c] = true
	}

	for _, c := range `()<>@,;:\"/[]?=` {
		table[c] = false
	}

	return table
}()
