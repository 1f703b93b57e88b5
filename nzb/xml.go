package nzb

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

// StripPrologue removes a leading XML declaration and/or DOCTYPE from the
// document, leaving everything else untouched. Strict XML backends reject
// these constructs, and NZB files in the wild routinely carry both; stripping
// keeps the parser interoperable regardless of backend.
func StripPrologue(text string) string {
	s := strings.TrimSpace(text)

	// <?xml ... ?>
	if len(s) >= 5 && strings.EqualFold(s[:5], "<?xml") {
		if end := strings.Index(s, "?>"); end >= 0 {
			s = strings.TrimSpace(s[end+2:])
		}
	}

	// <!DOCTYPE ... >
	if len(s) >= 9 && strings.EqualFold(s[:9], "<!DOCTYPE") {
		if end := strings.IndexByte(s, '>'); end >= 0 {
			s = strings.TrimSpace(s[end+1:])
		}
	}

	return s
}

// readDocument parses NZB XML text into an etree document, stripping the
// prologue first.
func readDocument(text string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(StripPrologue(text)); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, errors.New("document has no root element")
	}
	return doc, nil
}
