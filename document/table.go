package document

import (
	"fmt"
	"iter"
	"maps"

	"github.com/djdv/go-recents/internal/ring"
)

type (
	// Table is a single `[[name]]` block of an [ArrayOfTables].
	Table struct {
		fields map[string]any
	}
	// ArrayOfTables is an ordered collection of [Table]s.
	// The zero value is an empty collection.
	//
	// Removed tables are not handed back to the caller;
	// to move a table, remove it and push a new one.
	ArrayOfTables struct {
		sentinel ring.Ring[*Table]
		length   int
	}
)

// NewTable returns an empty [Table].
func NewTable() *Table {
	return &Table{fields: make(map[string]any)}
}

func newTableFrom(fields map[string]any) *Table {
	return &Table{fields: maps.Clone(fields)}
}

// Set assigns a string value to key.
func (t *Table) Set(key, value string) {
	t.fields[key] = value
}

// String returns the value of key if it is present
// and holds a string.
func (t *Table) String(key string) (string, bool) {
	value, ok := t.fields[key].(string)
	return value, ok
}

// Has reports whether key is present, regardless of its type.
func (t *Table) Has(key string) bool {
	_, ok := t.fields[key]
	return ok
}

// Len returns the number of fields in the table.
func (t *Table) Len() int { return len(t.fields) }

// Len returns the number of tables in the collection.
func (a *ArrayOfTables) Len() int { return a.length }

// At returns the table at index.
// It panics if index is out of range.
func (a *ArrayOfTables) At(index int) *Table {
	a.checkIndex(index)
	return a.sentinel.Move(index + 1).Value
}

// Push appends table to the end of the collection.
func (a *ArrayOfTables) Push(table *Table) {
	a.sentinel.Prev().Link(&ring.Ring[*Table]{Value: table})
	a.length++
}

// Remove deletes the table at index, shifting
// every later table down by one.
// It panics if index is out of range.
func (a *ArrayOfTables) Remove(index int) {
	a.checkIndex(index)
	a.sentinel.Move(index).Unlink(1)
	a.length--
}

// Clear removes every table.
func (a *ArrayOfTables) Clear() {
	a.sentinel = ring.Ring[*Table]{}
	a.length = 0
}

// All returns an iterator over the tables and their indices, in order.
func (a *ArrayOfTables) All() iter.Seq2[int, *Table] {
	return func(yield func(int, *Table) bool) {
		index := 0
		for element := range a.sentinel.After() {
			if !yield(index, element.Value) {
				return
			}
			index++
		}
	}
}

func (a *ArrayOfTables) checkIndex(index int) {
	if index < 0 || index >= a.length {
		panic(fmt.Sprintf(
			"document: index %d out of range [0:%d]",
			index, a.length,
		))
	}
}

func (a *ArrayOfTables) encode() []map[string]any {
	tables := make([]map[string]any, 0, a.length)
	for _, table := range a.All() {
		tables = append(tables, maps.Clone(table.fields))
	}
	return tables
}
