package recents

import (
	"slices"

	"github.com/djdv/go-recents/document"
)

// Writer pushes and clears entries of a held [Recents] list,
// keeping the list and its document mirrored.
// Concurrent access must be guarded by the caller.
// Constructed by [NewWriter].
type Writer struct {
	holder *document.Holder[Recents]
}

// NewWriter returns a [Writer] that edits holder.
func NewWriter(holder *document.Holder[Recents]) Writer {
	return Writer{holder: holder}
}

// Recents returns a copy of the current list.
func (w Writer) Recents() Recents {
	return slices.Clone(w.holder.Values())
}

func (w Writer) edit(fun func(values *Recents, array *document.ArrayOfTables)) {
	w.holder.Edit(func(values *Recents, doc *document.Document) {
		array := doc.GetOrCreateArrayOfTables(tableName)
		if debugging {
			assertMirrored(*values, array)
		}
		fun(values, array)
		if debugging {
			assertMirrored(*values, array)
		}
	})
}

// Clear removes every entry.
func (w Writer) Clear() {
	w.edit(func(values *Recents, array *document.ArrayOfTables) {
		array.Clear()
		*values = nil
	})
}

// Push adds recent as the most recently used entry.
// An entry with the same URL is moved to the top rather than duplicated.
// New entries evict the least recently used ones
// until the list holds at most limit entries.
// A limit of zero (or less) leaves everything untouched,
// as does a recent without a URL; see [ParseRecent].
func (w Writer) Push(recent Recent, limit int) {
	if limit <= 0 || recent.URL == nil {
		return
	}
	w.edit(func(values *Recents, array *document.ArrayOfTables) {
		if index := values.index(recent); index != -1 {
			// Document first, then the list.
			// The removed table is not returned, so a new one is made.
			array.Remove(index)
			array.Push(recent.table())
			*values = slices.Delete(*values, index, index+1)
			*values = append(*values, recent)
			return
		}
		if length := len(*values); length >= limit {
			// One more than the overflow, to make room for recent.
			evictions := (length - limit) + 1
			for range evictions {
				array.Remove(0)
				*values = slices.Delete(*values, 0, 1)
			}
		}
		array.Push(recent.table())
		*values = append(*values, recent)
	})
}

func assertMirrored(values Recents, array *document.ArrayOfTables) {
	assert(len(values) == array.Len(),
		"list and document differ in length")
	for i, table := range array.All() {
		url, _ := table.String(urlField)
		assert(url == values[i].key(),
			"list and document differ in order")
	}
}
