// errors.go -- errors returned while parsing filter definitions
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package access

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDefinition matches every *DefinitionError via errors.Is()
	ErrInvalidDefinition = errors.New("invalid definition")

	ErrDuplicateDefault = errors.New("default already set")
)

// DefinitionError describes a malformed line or token in a definition
// file. Line is 1-based and zero when the error did not come from the
// line parser (e.g., ParseThreshold called directly).
type DefinitionError struct {
	Line int
	Text string
	Msg  string
	Err  error
}

func (e *DefinitionError) Error() string {
	var b strings.Builder

	if e.Line > 0 {
		fmt.Fprintf(&b, "%d: ", e.Line)
	}
	fmt.Fprintf(&b, "%s: %s <%s>", ErrInvalidDefinition, e.Msg, e.Text)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err)
	}
	return b.String()
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// ReadError is returned when the definition source itself can't be
// opened or read. It is never an ErrInvalidDefinition.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("can't read filter definition %s: %s", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func invalid(text, msg string) *DefinitionError {
	return &DefinitionError{
		Text: text,
		Msg:  msg,
	}
}

func invalidErr(text, msg string, err error) *DefinitionError {
	return &DefinitionError{
		Text: text,
		Msg:  msg,
		Err:  err,
	}
}
