// Package nzb parses Usenet NZB index documents into a validated, immutable
// in-memory model and derives file-level facts (display name, extension,
// obfuscation) from posting subjects.
//
// The package performs no I/O: callers hand it a decoded XML string and get
// back plain values. See the nzbfile package for reading plain or gzipped
// NZB files from a filesystem.
package nzb

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/javi11/nzbinspect/nzb/subject"
)

var (
	par2Pattern = regexp.MustCompile(`(?i)\.par2$`)

	// RAR volumes: .rar plus the classic two-digit volume suffixes.
	// https://github.com/sabnzbd/sabnzbd/blob/02b4a116dd4b46b2d2f33f7bbf249f2294458f2e/sabnzbd/nzbstuff.py#L107
	rarPattern = regexp.MustCompile(`(?i)(\.rar|\.r\d\d|\.s\d\d|\.t\d\d|\.u\d\d|\.v\d\d)$`)
)

// Meta holds the optional creator-definable metadata of an NZB.
type Meta struct {
	Title     string   `json:"title,omitempty"`
	Passwords []string `json:"passwords,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Category  string   `json:"category,omitempty"`
}

// Segment is a single article making up part of a file.
type Segment struct {
	// Size of the segment in bytes.
	Size uint32 `json:"bytes"`
	// Number of the segment, 1-based.
	Number uint32 `json:"number"`
	// Message ID of the article.
	MessageID string `json:"message_id"`
}

// File is one complete file in an NZB, made up of segments. Groups are
// sorted lexicographically and segments by ascending number.
type File struct {
	Poster   string    `json:"poster"`
	PostedAt time.Time `json:"posted_at"`
	Subject  string    `json:"subject"`
	Groups   []string  `json:"groups"`
	Segments []Segment `json:"segments"`
}

// Size is the file size in bytes, the sum of its segment sizes.
func (f *File) Size() int64 {
	var total int64
	for _, s := range f.Segments {
		total += int64(s.Size)
	}
	return total
}

// Name is the complete filename, extension included, extracted from the
// subject. Returns "" when no name could be extracted; extraction is
// heuristic and best-effort.
func (f *File) Name() string {
	name, _ := subject.ExtractFilename(f.Subject)
	return name
}

// Stem is the filename without its extension. Returns "" when no name could
// be extracted.
func (f *File) Stem() string {
	stem, _ := subject.SplitExtension(f.Name())
	return stem
}

// Extension is the filename extension without the leading dot. Returns ""
// when no name could be extracted or the name has no qualifying extension.
func (f *File) Extension() string {
	_, ext := subject.SplitExtension(f.Name())
	return ext
}

// HasExtension reports whether the file has the given extension, ignoring
// case and a leading dot on the argument.
func (f *File) HasExtension(ext string) bool {
	ext = strings.TrimSpace(strings.TrimPrefix(ext, "."))
	fileExt := f.Extension()
	return fileExt != "" && strings.EqualFold(fileExt, ext)
}

// IsPar2 reports whether the file is a `.par2` repair file. False when no
// name could be extracted.
func (f *File) IsPar2() bool {
	return par2Pattern.MatchString(f.Name())
}

// IsRar reports whether the file is a RAR archive or volume. False when no
// name could be extracted.
func (f *File) IsRar() bool {
	return rarPattern.MatchString(f.Name())
}

// IsObfuscated reports whether the file's name looks machine-generated. A
// file whose name could not be extracted counts as obfuscated.
func (f *File) IsObfuscated() bool {
	name, ok := subject.ExtractFilename(f.Subject)
	if !ok {
		return true
	}
	stem, _ := subject.SplitExtension(name)
	return subject.IsObfuscated(stem)
}

// Nzb is a parsed and validated NZB document. Values are only constructed by
// Parse and are immutable afterwards; Files is non-empty and each file has
// non-empty groups and segments.
type Nzb struct {
	Meta  Meta   `json:"meta"`
	Files []File `json:"files"`
}

// MainFile is the main content file (episode, movie, ...) of the NZB,
// determined as the largest non-par2 file. Parse guarantees at least one
// non-par2 file exists, so the error is only returned for hand-built values
// that violate that invariant.
func (n *Nzb) MainFile() (*File, error) {
	var main *File
	for i := range n.Files {
		f := &n.Files[i]
		if f.IsPar2() {
			continue
		}
		if main == nil || f.Size() > main.Size() {
			main = f
		}
	}
	if main == nil {
		return nil, ErrOnlyPar2Files
	}
	return main, nil
}

// Size is the total size in bytes of all files in the NZB.
func (n *Nzb) Size() int64 {
	var total int64
	for i := range n.Files {
		total += n.Files[i].Size()
	}
	return total
}

// Filenames returns the unique extracted filenames across all files, sorted.
// Files whose name could not be extracted are omitted.
func (n *Nzb) Filenames() []string {
	names := make([]string, 0, len(n.Files))
	for i := range n.Files {
		if name := n.Files[i].Name(); name != "" {
			names = append(names, name)
		}
	}
	return uniqueSorted(names)
}

// Posters returns the unique posters across all files, sorted.
func (n *Nzb) Posters() []string {
	posters := make([]string, 0, len(n.Files))
	for i := range n.Files {
		posters = append(posters, n.Files[i].Poster)
	}
	return uniqueSorted(posters)
}

// Groups returns the unique groups across all files, sorted.
func (n *Nzb) Groups() []string {
	var groups []string
	for i := range n.Files {
		groups = append(groups, n.Files[i].Groups...)
	}
	return uniqueSorted(groups)
}

// Par2Files returns the `.par2` files in the NZB.
func (n *Nzb) Par2Files() []*File {
	var par2 []*File
	for i := range n.Files {
		if n.Files[i].IsPar2() {
			par2 = append(par2, &n.Files[i])
		}
	}
	return par2
}

// Par2Size is the total size in bytes of all `.par2` files.
func (n *Nzb) Par2Size() int64 {
	var total int64
	for i := range n.Files {
		if n.Files[i].IsPar2() {
			total += n.Files[i].Size()
		}
	}
	return total
}

// Par2Percentage is the size of all `.par2` files relative to the total
// size, in percent.
func (n *Nzb) Par2Percentage() float64 {
	return float64(n.Par2Size()) / float64(n.Size()) * 100
}

// HasExtension reports whether any file in the NZB has the given extension,
// ignoring case and a leading dot on the argument.
func (n *Nzb) HasExtension(ext string) bool {
	for i := range n.Files {
		if n.Files[i].HasExtension(ext) {
			return true
		}
	}
	return false
}

// HasPar2 reports whether the NZB contains at least one `.par2` file.
func (n *Nzb) HasPar2() bool {
	for i := range n.Files {
		if n.Files[i].IsPar2() {
			return true
		}
	}
	return false
}

// HasRar reports whether any file in the NZB is a RAR archive or volume.
func (n *Nzb) HasRar() bool {
	for i := range n.Files {
		if n.Files[i].IsRar() {
			return true
		}
	}
	return false
}

// IsRar reports whether every file in the NZB is a RAR archive or volume.
func (n *Nzb) IsRar() bool {
	for i := range n.Files {
		if !n.Files[i].IsRar() {
			return false
		}
	}
	return true
}

// IsObfuscated reports whether any file in the NZB is obfuscated.
func (n *Nzb) IsObfuscated() bool {
	for i := range n.Files {
		if n.Files[i].IsObfuscated() {
			return true
		}
	}
	return false
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
