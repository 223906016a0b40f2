// builder.go -- accumulates parsed directives into a FilterDefinition
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package access

// builder is owned by exactly one parse; it is never shared.
type builder struct {
	def       *Threshold
	elements  []Element
	recorders []Recorder

	done *FilterDefinition
}

func (b *builder) setDefault(t Threshold) error {
	if b.def != nil {
		return invalidErr(t.String(), "duplicate default", ErrDuplicateDefault)
	}
	b.def = &t
	return nil
}

func (b *builder) addElement(e Element) {
	b.elements = append(b.elements, e)
}

func (b *builder) addRecorder(r Recorder) {
	b.recorders = append(b.recorders, r)
}

// build finalizes the builder. A missing default becomes Allow.
// Repeated calls return the same definition.
func (b *builder) build() *FilterDefinition {
	if b.done != nil {
		return b.done
	}

	def := Allow
	if b.def != nil {
		def = *b.def
	}

	d := &FilterDefinition{
		def:       def,
		elements:  make([]Element, len(b.elements)),
		recorders: make([]Recorder, len(b.recorders)),
	}
	copy(d.elements, b.elements)
	copy(d.recorders, b.recorders)

	b.done = d
	return d
}
