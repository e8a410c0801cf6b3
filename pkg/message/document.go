package message

import (
	"fmt"

	"github.com/beevik/etree"
)

// ParseDocument parses data into a generic XML document.
// It is used for responses that have no typed model, such as admin lists.
func ParseDocument(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("malformed XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// ParseAdmins decodes each <user> child of the document root
func ParseAdmins(doc *etree.Document) ([]*UserConfig, error) {
	if doc == nil || doc.Root() == nil {
		return nil, ErrEmptyDocument
	}

	var users []*UserConfig
	for _, el := range doc.Root().ChildElements() {
		if el.Tag != "user" {
			continue
		}
		user := &UserConfig{}
		if err := parseElement(el, user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// parseElement re-serializes a detached copy of el and parses it into s
func parseElement(el *etree.Element, s Serializable) error {
	sub := etree.NewDocument()
	sub.SetRoot(el.Copy())
	data, err := sub.WriteToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize <%s>: %w", el.Tag, err)
	}
	return s.ParseXML(data)
}

// Indent pretty-prints an XML body for logging. Bodies that are not
// well-formed are returned unchanged.
func Indent(data []byte) string {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil || doc.Root() == nil {
		return string(data)
	}
	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return string(data)
	}
	return out
}
