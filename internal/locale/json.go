package locale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// DecodeJSON parses a JSON object into a tree, keeping the key order of
// the document. Duplicate keys keep their first position and last value.
func DecodeJSON(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrParse)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top-level JSON value must be an object, got %s", ErrParse, root.Type)
	}
	return fromJSON(root), nil
}

func fromJSON(obj gjson.Result) *Node {
	tree := NewTree()
	obj.ForEach(func(key, value gjson.Result) bool {
		tree.Set(key.String(), jsonNode(value))
		return true
	})
	return tree
}

func jsonNode(v gjson.Result) *Node {
	switch {
	case v.IsObject():
		return fromJSON(v)
	case v.Type == gjson.String:
		return Leaf(v.String())
	default:
		return Value(v.Value())
	}
}

// EncodeJSON renders tree the way JSON.stringify(tree, null, 2) does:
// two-space indentation, insertion order, no HTML escaping. The output
// ends with a newline.
func EncodeJSON(tree *Node) ([]byte, error) {
	var compact bytes.Buffer
	if err := writeJSON(&compact, tree); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	switch n.kind {
	case KindLeaf:
		return writeJSONScalar(buf, n.text)
	case KindValue:
		return writeJSONScalar(buf, n.value)
	}
	buf.WriteByte('{')
	for i, k := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONScalar(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSON(buf, n.children[k]); err != nil {
			return fmt.Errorf("encoding %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONScalar(buf *bytes.Buffer, v any) error {
	start := buf.Len()
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	unescapeLineSeparators(buf, start)
	return nil
}

// unescapeLineSeparators rewrites the \u2028 and \u2029 escapes that
// encoding/json always emits, from offset start on, as the raw characters.
// Escaped backslashes are skipped so that a literal "\\u2028" survives.
func unescapeLineSeparators(buf *bytes.Buffer, start int) {
	b := buf.Bytes()[start:]
	if !bytes.Contains(b, []byte(`\u202`)) {
		return
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if i+5 < len(b) && string(b[i+1:i+5]) == "u202" && (b[i+5] == '8' || b[i+5] == '9') {
			out = utf8.AppendRune(out, rune(0x2020+int(b[i+5]-'0')))
			i += 5
			continue
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	buf.Truncate(start)
	buf.Write(out)
}
