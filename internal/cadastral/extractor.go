package cadastral

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

// ErrNoRootElement is returned by Parse when the payload holds no element at all.
var ErrNoRootElement = errors.New("document has no root element")

// Well-formedness violations xmlquery tolerates but a document may not contain.
var (
	ErrMultipleRoots   = errors.New("more than one root element")
	ErrTextOutsideRoot = errors.New("text outside the root element")
)

// Match is the result of a successful lookup.
type Match struct {
	// Identifier is the normalized cadastral number.
	Identifier string
	// Raw is the value as found in the document.
	Raw string
	// Strategy names the strategy that produced the value.
	Strategy string
}

// Parse parses an XML payload and returns its root element.
func Parse(data []byte) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("malformed XML: %w", err)
	}
	var root *xmlquery.Node
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case xmlquery.ElementNode:
			if root != nil {
				return nil, fmt.Errorf("malformed XML: %w: <%s> after <%s>", ErrMultipleRoots, n.Data, root.Data)
			}
			root = n
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(n.Data) != "" {
				return nil, fmt.Errorf("malformed XML: %w", ErrTextOutsideRoot)
			}
		}
	}
	if root == nil {
		return nil, ErrNoRootElement
	}
	return root, nil
}

// Lookup parses data and runs the strategies in order.
// It returns (Match, true, nil) on success, (Match{}, false, nil) when the
// document parses but carries no usable value, and (Match{}, false, err)
// when the payload is not well-formed XML.
func Lookup(data []byte, strategies ...Strategy) (Match, bool, error) {
	root, err := Parse(data)
	if err != nil {
		return Match{}, false, err
	}
	if len(strategies) == 0 {
		strategies = DefaultStrategies
	}
	m, ok := LookupNode(root, strategies)
	return m, ok, nil
}

// LookupNode runs the strategies against an already parsed root element.
// The first strategy that yields any text decides the result: a value that
// normalizes to nothing is "not found", later strategies are not consulted.
func LookupNode(root *xmlquery.Node, strategies []Strategy) (Match, bool) {
	for _, s := range strategies {
		raw := s.Lookup(root)
		if raw == "" {
			continue
		}
		id := Normalize(raw)
		if id == "" {
			return Match{}, false
		}
		return Match{Identifier: id, Raw: raw, Strategy: s.Name}, true
	}
	return Match{}, false
}

// Extract returns the normalized cadastral number of an XML payload.
// Malformed XML and documents without a value both yield ("", false).
func Extract(data []byte) (string, bool) {
	m, ok, err := Lookup(data)
	if err != nil || !ok {
		return "", false
	}
	return m.Identifier, true
}

// ExtractFile reads an XML file from disk and extracts its cadastral number.
// Only I/O failures are returned as errors.
func ExtractFile(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	id, ok := Extract(data)
	return id, ok, nil
}

// Normalize trims surrounding whitespace and replaces ':' separators with '_'.
func Normalize(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ":", "_")
}
