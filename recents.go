package recents

import (
	"fmt"
	"iter"
	"net/url"
	"slices"

	"github.com/djdv/go-recents/document"
)

type (
	// Recent is a single recently used item.
	// Values are never modified once constructed;
	// see [ParseRecent].
	Recent struct {
		URL *url.URL
	}
	// Recents is an ordered list of [Recent] entries,
	// from least to most recently used.
	Recents []Recent
)

// DefaultLimit is the capacity used by front ends
// that do not let the user choose one.
const DefaultLimit = 10

const (
	tableName = "recent"
	urlField  = "url"
)

// ParseRecent constructs a [Recent] from an absolute URL.
func ParseRecent(rawURL string) (Recent, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return Recent{}, fmt.Errorf("%w %q: %w", ErrInvalidURL, rawURL, err)
	}
	if !parsed.IsAbs() {
		return Recent{}, fmt.Errorf("%w %q: not absolute", ErrInvalidURL, rawURL)
	}
	return Recent{URL: parsed}, nil
}

// New returns a holder with an empty list and document.
func New() *document.Holder[Recents] {
	return document.NewHolder[Recents](nil, nil)
}

func (r Recent) key() string {
	if r.URL == nil {
		return ""
	}
	return r.URL.String()
}

func (r Recent) String() string { return r.key() }

func (r Recent) table() *document.Table {
	table := document.NewTable()
	table.Set(urlField, r.key())
	return table
}

func (r Recents) index(recent Recent) int {
	key := recent.key()
	return slices.IndexFunc(r, func(other Recent) bool {
		return other.key() == key
	})
}

// Contains reports whether an entry with the same URL is present.
func (r Recents) Contains(recent Recent) bool {
	return r.index(recent) != -1
}

// All returns an iterator over the entries,
// from least to most recently used.
func (r Recents) All() iter.Seq[Recent] {
	return slices.Values(r)
}

// Newest returns an iterator over the entries,
// from most to least recently used.
func (r Recents) Newest() iter.Seq[Recent] {
	return func(yield func(Recent) bool) {
		for _, recent := range slices.Backward(r) {
			if !yield(recent) {
				return
			}
		}
	}
}
