// Package content reads localized XML content documents.
//
// A document groups its values under locale variants:
//
//	<NewElements>
//	  <Locale name="en">
//	    <Type>
//	      <Source>/sites/default/templates/article.html</Source>
//	      <Destination>
//	        <Folder>/sites/default/articles/</Folder>
//	        <Pattern>/sites/default/articles/article_%(number).html</Pattern>
//	      </Destination>
//	    </Type>
//	  </Locale>
//	</NewElements>
//
// Lookups address values by slash-separated paths relative to an entry or
// locale element, e.g. "Destination/Folder".
package content

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"newelem/internal/errors"
)

// LocaleAttr is the attribute naming a locale variant element.
const LocaleAttr = "name"

// node is one element of the parsed document tree.
type node struct {
	name     string
	attrs    map[string]string
	text     string
	children []*node
}

// child returns the first direct child with the given name.
func (n *node) child(name string) (*node, bool) {
	for _, c := range n.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// lookup walks a slash-separated path of child element names.
func (n *node) lookup(path string) (*node, bool) {
	cur := n
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		next, ok := cur.child(part)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Document is a parsed localized content document. It is immutable after
// parsing and safe for concurrent reads.
type Document struct {
	root    *node
	locales []string         // declaration order
	byName  map[string]*node // locale name -> variant element
}

// Parse reads a localized XML content document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse content document")
	}

	doc := &Document{
		root:   root,
		byName: make(map[string]*node),
	}
	for _, c := range root.children {
		if c.name != "Locale" {
			continue
		}
		locale := c.attrs[LocaleAttr]
		if locale == "" {
			continue
		}
		if _, seen := doc.byName[locale]; !seen {
			doc.locales = append(doc.locales, locale)
			doc.byName[locale] = c
		}
	}
	return doc, nil
}

// ParseFile reads a localized XML content document from a file.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("content document not found", path, errors.FileNotFound, err)
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// decode builds the element tree with a token-level XML decoder.
func decode(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)
	var stack []*node
	var root *node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name.Local, attrs: make(map[string]string)}
			for _, a := range t.Attr {
				n.attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("empty document")
	}
	return root, nil
}

// Root returns the name of the document's root element.
func (d *Document) Root() string {
	return d.root.name
}

// HasLocale reports whether the document has a variant for the locale.
func (d *Document) HasLocale(locale string) bool {
	_, ok := d.byName[locale]
	return ok
}

// Locales returns the document's locales in declaration order.
func (d *Document) Locales() []string {
	out := make([]string, len(d.locales))
	copy(out, d.locales)
	return out
}

// Value looks up a single value by its slash-separated path under the
// given locale variant. The second return is false if the path or the
// locale is absent.
func (d *Document) Value(path, locale string) (string, bool) {
	variant, ok := d.byName[locale]
	if !ok {
		return "", false
	}
	n, ok := variant.lookup(path)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(n.text), true
}

// Entry is a handle to one repeated element under a locale variant.
type Entry struct {
	n *node
}

// Value looks up a value by its slash-separated path relative to the entry.
func (e Entry) Value(path string) (string, bool) {
	n, ok := e.n.lookup(path)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(n.text), true
}

// Values returns all direct entries with the given tag name under the
// locale variant, in document order.
func (d *Document) Values(tag, locale string) []Entry {
	variant, ok := d.byName[locale]
	if !ok {
		return nil
	}
	var out []Entry
	for _, c := range variant.children {
		if c.name == tag {
			out = append(out, Entry{n: c})
		}
	}
	return out
}
