package strutil

import (
	"iter"
	"strings"
)

// WalkParams iterates over header parameters in the form of key=value pairs separated by
// semicolons. Values are either bare tokens or quoted strings, the latter may contain any
// byte except an unescaped quote (including semicolons). A parameter without value is
// yielded with an empty one. On malformed input a pair of empty strings is yielded, after
// which the iteration stops.
func WalkParams(data string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for data = LStripWS(data); len(data) > 0; data = LStripWS(data) {
			sep := strings.IndexAny(data, "=;")
			if sep == -1 {
				yield(RStripWS(data), "")
				return
			}

			key := RStripWS(data[:sep])
			if len(key) == 0 {
				yield("", "")
				return
			}

			if data[sep] == ';' {
				if !yield(key, "") {
					return
				}

				data = data[sep+1:]
				continue
			}

			var value string
			data = LStripWS(data[sep+1:])

			if len(data) > 0 && data[0] == '"' {
				end := closingQuote(data)
				if end == -1 {
					yield("", "")
					return
				}

				value, data = Unquote(data[:end+1]), LStripWS(data[end+1:])
				if len(data) > 0 {
					if data[0] != ';' {
						yield("", "")
						return
					}

					data = data[1:]
				}
			} else if end := strings.IndexByte(data, ';'); end == -1 {
				value, data = RStripWS(data), ""
			} else {
				value, data = RStripWS(data[:end]), data[end+1:]
			}

			if !yield(key, value) {
				return
			}
		}
	}
}

// closingQuote returns the index of the quote closing the one at the beginning of the str.
func closingQuote(str string) int {
	for i := 1; i < len(str); i++ {
		if isEscape(str, i) {
			i++
			continue
		}

		if str[i] == '"' {
			return i
		}
	}

	return -1
}
