package document

// Holder owns a [Document] together with the values
// that were decoded from it.
// Constructed by [NewHolder].
type Holder[T any] struct {
	values  T
	doc     *Document
	changed bool
}

// NewHolder pairs values with the document they mirror.
// A nil doc is replaced with an empty one.
func NewHolder[T any](values T, doc *Document) *Holder[T] {
	if doc == nil {
		doc = New()
	}
	return &Holder[T]{
		values: values,
		doc:    doc,
	}
}

// Values returns the held values.
// Reference types share storage with the holder
// and must be treated as read-only.
func (h *Holder[T]) Values() T { return h.values }

// Edit gives fun mutable access to both the values and the document,
// and marks the holder as changed.
// fun must leave both sides consistent with each other.
func (h *Holder[T]) Edit(fun func(values *T, doc *Document)) {
	fun(&h.values, h.doc)
	h.changed = true
}

// Changed reports whether [Holder.Edit] was called
// since construction or the last [Holder.MarkSaved].
func (h *Holder[T]) Changed() bool { return h.changed }

// MarkSaved clears the changed flag.
func (h *Holder[T]) MarkSaved() { h.changed = false }

// Marshal encodes the held document.
func (h *Holder[T]) Marshal() ([]byte, error) { return h.doc.Marshal() }
