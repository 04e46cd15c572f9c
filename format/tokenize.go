package format

import "strings"

// Tokenize splits input at every rune contained in delims and drops empty
// tokens, so runs of delimiters and leading or trailing delimiters produce
// nothing. An empty delims returns the whole input as one token.
// The result is never nil.
func Tokenize(input, delims string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}
