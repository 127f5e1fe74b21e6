package shell

import "strings"

// delimiters is the classic strtok set: space, tab, carriage return,
// newline and bell.
const delimiters = " \t\r\n\a"

// Tokenize splits a line into whitespace-delimited words. Tokens are
// owned strings rather than views into the line, so their lifetime is
// independent of the buffer they came from. There is no quote or escape
// handling and consecutive delimiters never produce empty tokens.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
}
