package wordgraph

import (
	"fmt"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// General marker (open/close)
	General = "§"
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
	// PathSeparator joins words of a shortest path in messages
	PathSeparator = " → "
)

// Replace replaces placeholders in template with values on the fly.
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	replaced := fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
	final := fasttemplate.ExecuteStringStd(replaced, General, General, valuesMap)
	return final
}

// Bridge renders result of a bridge word query
func (m *Messages) Bridge(res *BridgeResult) string {
	values := map[string]interface{}{
		"word1": res.Word1,
		"word2": res.Word2,
		"words": strings.Join(res.Words, ", "),
	}
	switch res.Status {
	case OperandMissing:
		return Replace(m.MissingWords, values)
	case NoBridge:
		return Replace(m.NoBridge, values)
	}
	return Replace(m.Bridges, values)
}

// ShortestPath renders a found path
func (m *Messages) ShortestPath(word1, word2 string, path *Path) string {
	return Replace(m.Path, map[string]interface{}{
		"word1":  word1,
		"word2":  word2,
		"path":   strings.Join(path.Words, PathSeparator),
		"length": path.Length,
	})
}

// Render renders template with given key/value pairs.
// ex: m.Render(m.NoPath, "word1", "a", "word2", "b")
func (m *Messages) Render(template string, kv ...string) string {
	values := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		values[kv[i]] = kv[i+1]
	}
	return Replace(template, values)
}
