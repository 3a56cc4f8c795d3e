package tosc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/paulschiretz/pgl-tosc/pkg/usererr"
)

// PrettyIndent is the indentation added per nesting level by Indent.
const PrettyIndent = "  "

// Indent re-serializes an XML payload so that every nesting level is indented
// by PrettyIndent and each element starts on its own line.
func Indent(payload []byte) ([]byte, error) {
	return rewrite(payload, PrettyIndent)
}

// Shrink re-serializes an XML payload with all whitespace-only text between
// elements removed.
func Shrink(payload []byte) ([]byte, error) {
	return rewrite(payload, "")
}

// utf8BOM is the byte-order mark some editors put in front of UTF-8 files.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

func rewrite(payload []byte, unit string) ([]byte, error) {
	// The output is always BOM-less UTF-8.
	payload = bytes.TrimPrefix(payload, utf8BOM)

	doc, err := parseDocument(payload)
	if err != nil {
		return nil, usererr.Wrap(usererr.MalformedXML, fmt.Errorf("malformed XML payload: %w", err))
	}

	reindent(doc.root, 0, unit)

	sep := ""
	if unit != "" {
		sep = "\n"
	}
	var b bytes.Buffer
	b.Grow(len(payload))
	doc.write(&b, sep)
	return b.Bytes(), nil
}

// reindent replaces whitespace-only text and tails below n with the
// separator for their depth. Non-blank text is never touched, and leaf
// elements keep their content as is.
func reindent(n *node, depth int, unit string) {
	if n.kind != elementNode || len(n.children) == 0 {
		return
	}

	childSep := separator(depth+1, unit)
	if isBlank(n.text) {
		n.text = childSep
	}
	for _, c := range n.children {
		reindent(c, depth+1, unit)
		if isBlank(c.tail) {
			c.tail = childSep
		}
	}
	if last := n.children[len(n.children)-1]; isBlank(last.tail) {
		last.tail = separator(depth, unit)
	}
}

func separator(depth int, unit string) string {
	if unit == "" {
		return ""
	}
	return "\n" + strings.Repeat(unit, depth)
}
