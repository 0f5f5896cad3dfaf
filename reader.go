package recents

import (
	"fmt"

	"github.com/djdv/go-recents/document"
)

// Read decodes a list from the `[[recent]]` tables of a TOML document.
//
// Tables that cannot be used are removed from the document
// so that it stays mirrored with the list; each one is reported
// in the returned warnings. When the same URL appears more than once,
// the last (most recent) table wins.
// An error is returned only if data is not valid TOML.
func Read(data []byte) (*document.Holder[Recents], []error, error) {
	doc, err := document.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	array, ok := doc.ArrayOfTables(tableName)
	if !ok {
		return document.NewHolder[Recents](nil, doc), nil, nil
	}
	type decoded struct {
		recent Recent
		keep   bool
	}
	var (
		entries  = make([]decoded, array.Len())
		latest   = make(map[string]int, array.Len())
		warnings []error
	)
	for i, table := range array.All() {
		recent, err := decodeTable(table)
		if err != nil {
			warnings = append(warnings,
				fmt.Errorf("recent entry %d: %w", i, err))
			continue
		}
		key := recent.key()
		if previous, seen := latest[key]; seen {
			entries[previous].keep = false
			warnings = append(warnings,
				fmt.Errorf("recent entry %d: %w %q (superseded by entry %d)",
					previous, ErrDuplicateURL, key, i))
		}
		latest[key] = i
		entries[i] = decoded{recent: recent, keep: true}
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if !entries[i].keep {
			array.Remove(i)
		}
	}
	values := make(Recents, 0, len(latest))
	for _, entry := range entries {
		if entry.keep {
			values = append(values, entry.recent)
		}
	}
	return document.NewHolder(values, doc), warnings, nil
}

func decodeTable(table *document.Table) (Recent, error) {
	rawURL, ok := table.String(urlField)
	if !ok {
		if table.Has(urlField) {
			return Recent{}, fmt.Errorf("%w: not a string", ErrInvalidURL)
		}
		return Recent{}, ErrMissingURL
	}
	recent, err := ParseRecent(rawURL)
	if err != nil {
		return Recent{}, err
	}
	// Store the normalized form so the table
	// matches what Push would have written.
	if key := recent.key(); key != rawURL {
		table.Set(urlField, key)
	}
	return recent, nil
}
