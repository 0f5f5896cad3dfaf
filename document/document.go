package document

import (
	"fmt"
	"maps"

	"github.com/pelletier/go-toml/v2"
)

// Document is a parsed TOML document whose arrays
// of tables may be edited in place.
// Constructed by [New] or [Parse].
type Document struct {
	root   map[string]any
	arrays map[string]*ArrayOfTables
}

// New returns an empty [Document].
func New() *Document {
	return &Document{
		root:   make(map[string]any),
		arrays: make(map[string]*ArrayOfTables),
	}
}

// Parse decodes a TOML document.
// Empty input yields an empty document.
func Parse(data []byte) (*Document, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	doc := New()
	for key, value := range root {
		if tables, ok := asTables(value); ok {
			array := new(ArrayOfTables)
			for _, fields := range tables {
				array.Push(newTableFrom(fields))
			}
			doc.arrays[key] = array
			continue
		}
		doc.root[key] = value
	}
	return doc, nil
}

// asTables reports whether value was decoded from
// a non-empty array of tables.
func asTables(value any) ([]map[string]any, bool) {
	values, ok := value.([]any)
	if !ok || len(values) == 0 {
		return nil, false
	}
	tables := make([]map[string]any, len(values))
	for i, value := range values {
		table, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		tables[i] = table
	}
	return tables, true
}

// ArrayOfTables returns the named array of tables, if present.
func (d *Document) ArrayOfTables(name string) (*ArrayOfTables, bool) {
	array, ok := d.arrays[name]
	return array, ok
}

// GetOrCreateArrayOfTables returns the named array of tables,
// creating an empty one if needed. A value of any other type
// stored under the same name is replaced.
func (d *Document) GetOrCreateArrayOfTables(name string) *ArrayOfTables {
	if array, ok := d.arrays[name]; ok {
		return array
	}
	delete(d.root, name)
	array := new(ArrayOfTables)
	d.arrays[name] = array
	return array
}

// Marshal encodes the document as TOML.
// Arrays of tables are written as `[[name]]` blocks in order;
// empty arrays of tables are omitted.
func (d *Document) Marshal() ([]byte, error) {
	out := maps.Clone(d.root)
	for name, array := range d.arrays {
		if array.Len() == 0 {
			continue
		}
		out[name] = array.encode()
	}
	if len(out) == 0 {
		return nil, nil
	}
	data, err := toml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("could not encode document: %w", err)
	}
	return data, nil
}
