package fit

import (
	"errors"
	"fmt"
)

// FormatError indicates the input bytes do not conform to the FIT wire
// format: a bad file header size or marker, or a malformed definition
// record.
type FormatError string

func (e FormatError) Error() string { return string(e) }

// IntegrityError indicates a checksum mismatch found by CheckIntegrity.
type IntegrityError string

func (e IntegrityError) Error() string { return string(e) }

// NotSupportedError indicates a structurally valid but unsupported
// construct (e.g. a manufacturer-specific file type range).
type NotSupportedError string

func (e NotSupportedError) Error() string { return string(e) }

var (
	// ErrUnexpectedEOF is returned when the reader runs out of bytes
	// before a field, header, or definition is fully consumed.
	ErrUnexpectedEOF = errors.New("fit: unexpected end of input")
)

// UndefinedLocalMessageError is returned when a data record references a
// local message type slot that has no installed definition.
type UndefinedLocalMessageError struct {
	LocalType uint8
}

func (e *UndefinedLocalMessageError) Error() string {
	return fmt.Sprintf("fit: data record references undefined local message type %d", e.LocalType)
}
