package tosc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

type nodeKind int

const (
	elementNode nodeKind = iota
	commentNode
	procInstNode
	directiveNode
)

// node mirrors the text/tail model of an element tree: text is the character
// data before the first child, tail the character data after the node inside
// its parent. This is what makes whitespace rewriting a local operation.
type node struct {
	kind     nodeKind
	name     xml.Name // element name, or the target of a processing instruction
	attrs    []xml.Attr
	data     []byte // comment, directive or processing instruction body
	text     string
	children []*node
	tail     string
}

// document is a parsed payload: misc nodes before and after a single root.
type document struct {
	prolog []*node
	root   *node
	epilog []*node
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#13;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
		"\n", "&#10;", "\r", "&#13;", "\t", "&#9;",
	)
)

var (
	// declEncoding matches the encoding pseudo-attribute of an XML declaration.
	declEncoding = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)
	// internalEntity matches a general entity with a literal value in an
	// internal DTD subset. Parameter and external entities are not expanded.
	internalEntity = regexp.MustCompile(`<!ENTITY\s+([^\s%"'>]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)
)

// parseDocument builds a tree from data. RawToken is used so namespace
// prefixes are kept verbatim instead of being resolved to URLs; element
// nesting is therefore checked here.
//
// Payloads declared in another encoding are decoded, and their declaration
// is rewritten to UTF-8 to match the serialized output.
func parseDocument(data []byte) (*document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel
	dec.Entity = map[string]string{}

	doc := &document{}
	var stack []*node

	appendChild := func(n *node) {
		if len(stack) == 0 {
			if doc.root == nil {
				doc.prolog = append(doc.prolog, n)
			} else {
				doc.epilog = append(doc.epilog, n)
			}
			return
		}
		parent := stack[len(stack)-1]
		parent.children = append(parent.children, n)
	}

	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{kind: elementNode, name: t.Name, attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if doc.root != nil {
					line, _ := dec.InputPos()
					return nil, fmt.Errorf("line %d: second root element <%s>", line, qualifiedName(t.Name))
				}
				doc.root = n
			} else {
				appendChild(n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected end element </%s>", qualifiedName(t.Name))
			}
			top := stack[len(stack)-1]
			if top.name != t.Name {
				return nil, fmt.Errorf("element <%s> closed by </%s>", qualifiedName(top.name), qualifiedName(t.Name))
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if !isBlank(string(t)) {
					return nil, fmt.Errorf("character data outside the root element")
				}
				continue
			}
			parent := stack[len(stack)-1]
			if len(parent.children) == 0 {
				parent.text += string(t)
			} else {
				parent.children[len(parent.children)-1].tail += string(t)
			}
		case xml.Comment:
			appendChild(&node{kind: commentNode, data: t.Copy()})
		case xml.ProcInst:
			inst := t.Copy().Inst
			if t.Target == "xml" {
				inst = utf8Declaration(inst)
			}
			appendChild(&node{kind: procInstNode, name: xml.Name{Local: t.Target}, data: inst})
		case xml.Directive:
			if bytes.HasPrefix(t, []byte("DOCTYPE")) {
				for _, m := range internalEntity.FindAllSubmatch(t, -1) {
					dec.Entity[string(m[1])] = string(m[2]) + string(m[3])
				}
			}
			appendChild(&node{kind: directiveNode, data: t.Copy()})
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("element <%s> is never closed", qualifiedName(stack[len(stack)-1].name))
	}
	if doc.root == nil {
		return nil, fmt.Errorf("no root element")
	}
	return doc, nil
}

// write serializes the document. sep is written after every top-level node.
func (d *document) write(b *bytes.Buffer, sep string) {
	for _, n := range d.prolog {
		writeNode(b, n)
		b.WriteString(sep)
	}
	writeNode(b, d.root)
	b.WriteString(sep)
	for _, n := range d.epilog {
		writeNode(b, n)
		b.WriteString(sep)
	}
}

func writeNode(b *bytes.Buffer, n *node) {
	switch n.kind {
	case elementNode:
		b.WriteByte('<')
		b.WriteString(qualifiedName(n.name))
		for _, a := range n.attrs {
			b.WriteByte(' ')
			b.WriteString(qualifiedName(a.Name))
			b.WriteString(`="`)
			attrEscaper.WriteString(b, a.Value)
			b.WriteByte('"')
		}
		if n.text == "" && len(n.children) == 0 {
			b.WriteString("/>")
			break
		}
		b.WriteByte('>')
		textEscaper.WriteString(b, n.text)
		for _, c := range n.children {
			writeNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(qualifiedName(n.name))
		b.WriteByte('>')
	case commentNode:
		b.WriteString("<!--")
		b.Write(n.data)
		b.WriteString("-->")
	case procInstNode:
		b.WriteString("<?")
		b.WriteString(n.name.Local)
		if len(n.data) > 0 {
			b.WriteByte(' ')
			b.Write(n.data)
		}
		b.WriteString("?>")
	case directiveNode:
		b.WriteString("<!")
		b.Write(n.data)
		b.WriteByte('>')
	}
	textEscaper.WriteString(b, n.tail)
}

// utf8Declaration rewrites a non-UTF-8 encoding in an XML declaration body.
// UTF-8 declarations are returned unchanged.
func utf8Declaration(inst []byte) []byte {
	m := declEncoding.FindSubmatchIndex(inst)
	if m == nil {
		return inst
	}
	label := string(inst[m[2]+1 : m[3]-1])
	if strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return inst
	}
	out := make([]byte, 0, len(inst))
	out = append(out, inst[:m[0]]...)
	out = append(out, `encoding="UTF-8"`...)
	return append(out, inst[m[1]:]...)
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// isBlank reports whether s consists only of XML whitespace.
func isBlank(s string) bool {
	return strings.Trim(s, " \t\r\n") == ""
}
