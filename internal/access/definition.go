// definition.go -- parsed representation of a filter definition file
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package access

import (
	"fmt"
	"io"
)

// Element is one rule of a filter definition. It is either an
// *ExplicitElement or a *FileElement; consumers are expected to use a
// type switch.
type Element interface {
	Threshold() Threshold

	element()
}

// ExplicitElement applies its threshold to a single named identity.
type ExplicitElement struct {
	Identity string
	thresh   Threshold
}

// FileElement applies its threshold to every identity listed in the
// file at Path. The file is not opened by the parser.
type FileElement struct {
	Path   string
	thresh Threshold
}

func NewExplicitElement(id string, t Threshold) *ExplicitElement {
	return &ExplicitElement{Identity: id, thresh: t}
}

func NewFileElement(path string, t Threshold) *FileElement {
	return &FileElement{Path: path, thresh: t}
}

func (e *ExplicitElement) Threshold() Threshold { return e.thresh }
func (e *FileElement) Threshold() Threshold     { return e.thresh }

func (e *ExplicitElement) element() {}
func (e *FileElement) element()     {}

func (e *ExplicitElement) String() string {
	return fmt.Sprintf("%s explicit %s", e.thresh, e.Identity)
}

func (e *FileElement) String() string {
	return fmt.Sprintf("%s file %s", e.thresh, e.Path)
}

// Recorder tells the logging collaborator to record events matching
// Threshold into the file at Path.
type Recorder struct {
	Threshold Threshold
	Path      string
}

func (r Recorder) String() string {
	return fmt.Sprintf("recorder %s %s", r.Threshold, r.Path)
}

// FilterDefinition is the immutable result of parsing a definition file.
// Elements and recorders are kept in the order they appear in the file;
// duplicate identities are not detected here.
type FilterDefinition struct {
	def       Threshold
	elements  []Element
	recorders []Recorder
}

// Default returns the threshold for identities that match no element.
func (d *FilterDefinition) Default() Threshold {
	return d.def
}

// Elements returns a copy of the ordered element list
func (d *FilterDefinition) Elements() []Element {
	v := make([]Element, len(d.elements))
	copy(v, d.elements)
	return v
}

// Recorders returns a copy of the ordered recorder list
func (d *FilterDefinition) Recorders() []Recorder {
	v := make([]Recorder, len(d.recorders))
	copy(v, d.recorders)
	return v
}

// Print definition in human readable format
func (d *FilterDefinition) Dump(w io.Writer) {
	fmt.Fprintf(w, "filter: default %s; %d elements, %d recorders\n",
		d.def, len(d.elements), len(d.recorders))

	for i, e := range d.elements {
		switch e := e.(type) {
		case *ExplicitElement:
			fmt.Fprintf(w, "\t%3d: %s identity %s\n", i, e.thresh, e.Identity)
		case *FileElement:
			fmt.Fprintf(w, "\t%3d: %s identities from %s\n", i, e.thresh, e.Path)
		}
	}

	for _, r := range d.recorders {
		fmt.Fprintf(w, "\trecord %s events to %s\n", r.Threshold, r.Path)
	}
}
