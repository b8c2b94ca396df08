package wordgraph

import (
	"regexp"
	"strings"
)

// wordRegex matches a maximal run of word characters.
// Letters and digits are matched across scripts so that non-ascii text
// tokenizes the same way as ascii text.
var wordRegex = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize splits text into lowercase word tokens in left-to-right order.
// Everything that is not a word character is treated as a separator
// and discarded.
//
// EXAMPLE:
//
//	Input:  "Hello, World! 123 foo_bar."
//	Output: []string{"hello", "world", "123", "foo_bar"}
func Tokenize(text string) []string {
	tokens := wordRegex.FindAllString(strings.ToLower(text), -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}
