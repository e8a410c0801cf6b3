package message

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyDocument is returned when a body contains no root element
	ErrEmptyDocument = errors.New("empty XML document")
	// ErrUnexpectedRoot is returned when the root element does not match the payload type
	ErrUnexpectedRoot = errors.New("unexpected root element")
)

// encode writes v as a document whose root element is root
func encode(root string, v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: root}}); err != nil {
		return nil, fmt.Errorf("failed to encode <%s>: %w", root, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode <%s>: %w", root, err)
	}
	return buf.Bytes(), nil
}

// decode reads the root element of data into v. The root must be named root
// and the whole document must be well-formed.
func decode(data []byte, root string, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))

	start, err := rootElement(dec)
	if err != nil {
		return err
	}
	if start.Name.Local != root {
		return fmt.Errorf("%w: expected <%s>, got <%s>", ErrUnexpectedRoot, root, start.Name.Local)
	}
	if err := dec.DecodeElement(v, &start); err != nil {
		return fmt.Errorf("failed to decode <%s>: %w", root, err)
	}

	// Anything after the root must still be well-formed
	for {
		if _, err := dec.Token(); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("malformed XML after <%s>: %w", root, err)
		}
	}
}

func rootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, ErrEmptyDocument
		}
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("malformed XML: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

// RootName returns the local name of the root element of data
func RootName(data []byte) (string, error) {
	se, err := rootElement(xml.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return "", err
	}
	return se.Name.Local, nil
}
