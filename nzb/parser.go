package nzb

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/javi11/nzbinspect/nzb/subject"
)

// Parse parses a UTF-8 string containing NZB XML, possibly prefixed by an
// XML declaration and/or DOCTYPE, into a validated Nzb.
//
// Parsing is a pure function of its input: it performs no I/O, keeps no
// state between calls, and independent documents may be parsed concurrently.
// Any validation failure aborts the whole parse; there is no partial result.
func Parse(text string) (*Nzb, error) {
	doc, err := readDocument(text)
	if err != nil {
		return nil, &SyntaxError{cause: err}
	}

	meta := parseMetadata(doc)
	files, err := parseFiles(doc)
	if err != nil {
		return nil, err
	}

	return &Nzb{Meta: meta, Files: files}, nil
}

// parseMetadata extracts <meta type="..."> fields per the NZB specification's
// metadata defined types (https://sabnzbd.org/wiki/extra/nzb-spec).
//
// title and category are single-valued with first-wins semantics; password
// and tag may repeat and keep insertion order, duplicates included. Unknown
// types are ignored, as clients must tolerate metadata they do not know.
// Elements with missing or empty text are skipped.
func parseMetadata(doc *etree.Document) Meta {
	var meta Meta

	for _, el := range doc.FindElements("//meta") {
		text := el.Text()
		if text == "" {
			continue
		}

		switch strings.ToLower(el.SelectAttrValue("type", "")) {
		case "title":
			if meta.Title == "" {
				meta.Title = text
			}
		case "password":
			meta.Passwords = append(meta.Passwords, text)
		case "tag":
			meta.Tags = append(meta.Tags, text)
		case "category":
			if meta.Category == "" {
				meta.Category = text
			}
		}
	}

	return meta
}

// parseFiles extracts and validates every <file> element in the document.
//
// Each file must carry poster, date and subject attributes, reference at
// least one group and contain at least one fully parseable segment.
// Individually malformed segments and blank group names are skipped rather
// than fatal; Usenet postings are commonly slightly malformed but still
// usable if enough valid segments remain.
func parseFiles(doc *etree.Document) ([]File, error) {
	fileEls := doc.FindElements("//file")

	files := make([]File, 0, len(fileEls))
	for _, el := range fileEls {
		f, err := parseFile(el)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	onlyPar2 := true
	for i := range files {
		if !files[i].IsPar2() {
			onlyPar2 = false
			break
		}
	}
	if onlyPar2 {
		return nil, ErrOnlyPar2Files
	}

	// Order files by the natural key of their subject so that "[2/10]"
	// sorts before "[10/10]", with plain subject comparison as tie-break.
	sort.SliceStable(files, func(i, j int) bool {
		return subject.Compare(files[i].Subject, files[j].Subject) < 0
	})

	return files, nil
}

// parseFile validates a single <file> element. Required attributes are
// reported in a fixed order: poster, then date, then subject.
func parseFile(el *etree.Element) (File, error) {
	poster := el.SelectAttr("poster")
	if poster == nil {
		return File{}, &FileAttributeError{Kind: AttributePoster}
	}

	// The date attribute is a Unix timestamp in seconds.
	date := el.SelectAttr("date")
	if date == nil {
		return File{}, &FileAttributeError{Kind: AttributeDate}
	}
	secs, err := strconv.ParseInt(date.Value, 10, 64)
	if err != nil {
		return File{}, &FileAttributeError{Kind: AttributeDate}
	}
	postedAt := time.Unix(secs, 0).UTC()

	subj := el.SelectAttr("subject")
	if subj == nil {
		return File{}, &FileAttributeError{Kind: AttributeSubject}
	}

	var groups []string
	for _, g := range el.FindElements(".//groups/group") {
		if text := g.Text(); strings.TrimSpace(text) != "" {
			groups = append(groups, text)
		}
	}
	if len(groups) == 0 {
		return File{}, ErrNoGroups
	}

	var segments []Segment
	for _, seg := range el.FindElements(".//segments/segment") {
		messageID := seg.Text()
		if messageID == "" {
			continue
		}
		// Article sizes are typically ~700KB and safely fit in uint32.
		size, err := strconv.ParseUint(seg.SelectAttrValue("bytes", ""), 10, 32)
		if err != nil {
			continue
		}
		number, err := strconv.ParseUint(seg.SelectAttrValue("number", ""), 10, 32)
		if err != nil {
			continue
		}
		segments = append(segments, Segment{
			Size:      uint32(size),
			Number:    uint32(number),
			MessageID: messageID,
		})
	}
	if len(segments) == 0 {
		return File{}, ErrNoSegments
	}

	// Sort for consistency.
	sort.Strings(groups)
	sort.Slice(segments, func(i, j int) bool { return segments[i].Number < segments[j].Number })

	return File{
		Poster:   poster.Value,
		PostedAt: postedAt,
		Subject:  subj.Value,
		Groups:   groups,
		Segments: segments,
	}, nil
}
