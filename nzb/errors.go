package nzb

import (
	"errors"
	"fmt"
)

// Document-level parse failures. Any of these aborts the whole parse;
// there is no partial result.
var (
	// ErrNoFiles indicates that no valid 'file' element was found.
	// An NZB document must contain at least one valid 'file' element.
	ErrNoFiles = errors.New("invalid or missing 'file' element in the NZB document")

	// ErrNoGroups indicates a 'file' element with no valid groups.
	// Each 'file' element must reference at least one group.
	ErrNoGroups = errors.New("invalid or missing 'groups' element within a 'file' element")

	// ErrNoSegments indicates a 'file' element with no valid segments.
	// Each 'file' element must contain at least one parseable segment.
	ErrNoSegments = errors.New("invalid or missing 'segments' element within a 'file' element")

	// ErrOnlyPar2Files indicates a document whose every file is a `.par2`
	// repair file. A usable NZB must include at least one non-`.par2` file.
	ErrOnlyPar2Files = errors.New("the NZB document contains only `.par2` files")
)

// AttributeKind identifies a required attribute of a 'file' element.
type AttributeKind int

const (
	AttributePoster AttributeKind = iota
	AttributeDate
	AttributeSubject
)

func (k AttributeKind) String() string {
	switch k {
	case AttributePoster:
		return "poster"
	case AttributeDate:
		return "date"
	case AttributeSubject:
		return "subject"
	default:
		return "unknown"
	}
}

// FileAttributeError reports a missing or unparsable required attribute in a
// 'file' element. Kind distinguishes which attribute failed.
type FileAttributeError struct {
	Kind AttributeKind
}

func (e *FileAttributeError) Error() string {
	return fmt.Sprintf("invalid or missing required attribute %q in a 'file' element", e.Kind.String())
}

// Is allows errors.Is matching against another FileAttributeError of the
// same kind.
func (e *FileAttributeError) Is(target error) bool {
	t, ok := target.(*FileAttributeError)
	return ok && t.Kind == e.Kind
}

// SyntaxError reports that the document is not well-formed XML. It wraps the
// error produced by the underlying XML backend.
type SyntaxError struct {
	cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("the NZB document is not valid XML and could not be parsed: %v", e.cause)
}

// Unwrap returns the underlying XML backend error.
func (e *SyntaxError) Unwrap() error {
	return e.cause
}
