package harvest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

// StageURLs returns the non-empty Stage/URL values of an XML payload.
// Only Stage elements that are direct children of the root count, and only
// the first URL child of each.
func StageURLs(data []byte) ([]string, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("malformed XML: %w", err)
	}
	root := xmlquery.FindOne(doc, "/*")
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	var urls []string
	for _, stage := range xmlquery.Find(root, "Stage") {
		u := xmlquery.FindOne(stage, "URL")
		if u == nil {
			continue
		}
		if v := strings.TrimSpace(u.InnerText()); v != "" {
			urls = append(urls, v)
		}
	}
	return urls, nil
}
