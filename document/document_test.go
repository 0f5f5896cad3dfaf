package document_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/djdv/go-recents/document"
	"github.com/pelletier/go-toml/v2"
)

type testFile struct {
	Title string      `toml:"title"`
	Items []testTable `toml:"item"`
}

type testTable struct {
	Name  string `toml:"name"`
	Extra int64  `toml:"extra"`
}

const sample = `title = "sample"

[[item]]
name = "one"
extra = 7

[[item]]
name = "two"

[[item]]
name = "three"
`

func TestDocument(t *testing.T) {
	t.Run("parse", parse)
	t.Run("parse error", parseError)
	t.Run("empty", empty)
	t.Run("remove", remove)
	t.Run("push", push)
	t.Run("clear", clearTables)
	t.Run("round trip", roundTrip)
	t.Run("replace scalar", replaceScalar)
	t.Run("index out of range", outOfRange)
}

func parse(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, sample)
	array, ok := doc.ArrayOfTables("item")
	if !ok {
		t.Fatal("expected array of tables `item`")
	}
	checkNames(t, array, []string{"one", "two", "three"})
	if !array.At(0).Has("extra") {
		t.Fatal("expected unrelated field to survive parsing")
	}
	if _, ok := array.At(0).String("extra"); ok {
		t.Fatal("integer field should not read as a string")
	}
	if _, ok := doc.ArrayOfTables("title"); ok {
		t.Fatal("scalar value should not read as an array of tables")
	}
}

func parseError(t *testing.T) {
	t.Parallel()
	_, err := document.Parse([]byte("[[item]\nname = "))
	if !errors.Is(err, document.ErrParse) {
		t.Fatalf("expected parse error\n\tgot: %v\n\twant: %v",
			err, document.ErrParse)
	}
}

func empty(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "")
	if _, ok := doc.ArrayOfTables("item"); ok {
		t.Fatal("empty document should not contain arrays")
	}
	array := doc.GetOrCreateArrayOfTables("item")
	if array.Len() != 0 {
		t.Fatalf("new array length\n\tgot: %d\n\twant: 0", array.Len())
	}
	data := mustMarshal(t, doc)
	if len(data) != 0 {
		t.Fatalf("empty array of tables should not be written, got: %q", data)
	}
}

func remove(t *testing.T) {
	t.Parallel()
	array := mustParse(t, sample).GetOrCreateArrayOfTables("item")
	array.Remove(1)
	checkNames(t, array, []string{"one", "three"})
	array.Remove(0)
	checkNames(t, array, []string{"three"})
	array.Remove(0)
	checkNames(t, array, nil)
}

func push(t *testing.T) {
	t.Parallel()
	array := mustParse(t, sample).GetOrCreateArrayOfTables("item")
	table := document.NewTable()
	table.Set("name", "four")
	array.Push(table)
	checkNames(t, array, []string{"one", "two", "three", "four"})
	if got := array.At(3); got != table {
		t.Fatal("pushed table should be stored as is")
	}
}

func clearTables(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, sample)
	array := doc.GetOrCreateArrayOfTables("item")
	array.Clear()
	checkNames(t, array, nil)
	var decoded testFile
	decode(t, mustMarshal(t, doc), &decoded)
	if decoded.Title != "sample" || len(decoded.Items) != 0 {
		t.Fatalf("unexpected document after clear: %+v", decoded)
	}
	table := document.NewTable()
	table.Set("name", "again")
	array.Push(table)
	checkNames(t, array, []string{"again"})
}

func roundTrip(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, sample)
	doc.GetOrCreateArrayOfTables("item").Remove(1)
	var decoded testFile
	decode(t, mustMarshal(t, doc), &decoded)
	want := testFile{
		Title: "sample",
		Items: []testTable{
			{Name: "one", Extra: 7},
			{Name: "three"},
		},
	}
	if decoded.Title != want.Title ||
		!slices.Equal(decoded.Items, want.Items) {
		t.Fatalf(
			"unexpected round trip"+
				"\n\tgot: %+v"+
				"\n\twant: %+v",
			decoded, want)
	}
}

func replaceScalar(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "item = 1\n")
	array := doc.GetOrCreateArrayOfTables("item")
	table := document.NewTable()
	table.Set("name", "one")
	array.Push(table)
	var decoded testFile
	decode(t, mustMarshal(t, doc), &decoded)
	if len(decoded.Items) != 1 || decoded.Items[0].Name != "one" {
		t.Fatalf("scalar was not replaced: %+v", decoded)
	}
}

func outOfRange(t *testing.T) {
	t.Parallel()
	array := mustParse(t, sample).GetOrCreateArrayOfTables("item")
	for _, index := range []int{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for index %d", index)
				}
			}()
			array.Remove(index)
		}()
	}
	checkNames(t, array, []string{"one", "two", "three"})
}

func TestHolder(t *testing.T) {
	t.Parallel()
	holder := document.NewHolder([]string{"one"}, nil)
	if holder.Changed() {
		t.Fatal("new holder should not be changed")
	}
	holder.Edit(func(values *[]string, doc *document.Document) {
		*values = append(*values, "two")
		table := document.NewTable()
		table.Set("name", "two")
		doc.GetOrCreateArrayOfTables("item").Push(table)
	})
	if !holder.Changed() {
		t.Fatal("edited holder should be changed")
	}
	if got := holder.Values(); !slices.Equal(got, []string{"one", "two"}) {
		t.Fatalf("unexpected values: %v", got)
	}
	var decoded testFile
	data, err := holder.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	decode(t, data, &decoded)
	if len(decoded.Items) != 1 || decoded.Items[0].Name != "two" {
		t.Fatalf("unexpected document: %+v", decoded)
	}
	holder.MarkSaved()
	if holder.Changed() {
		t.Fatal("saved holder should not be changed")
	}
}

func mustParse(tb testing.TB, text string) *document.Document {
	tb.Helper()
	doc, err := document.Parse([]byte(text))
	if err != nil {
		tb.Fatal(err)
	}
	return doc
}

func mustMarshal(tb testing.TB, doc *document.Document) []byte {
	tb.Helper()
	data, err := doc.Marshal()
	if err != nil {
		tb.Fatal(err)
	}
	return data
}

func decode(tb testing.TB, data []byte, target any) {
	tb.Helper()
	if err := toml.Unmarshal(data, target); err != nil {
		tb.Fatalf("could not decode %q: %v", data, err)
	}
}

func checkNames(tb testing.TB, array *document.ArrayOfTables, want []string) {
	tb.Helper()
	var got []string
	for i, table := range array.All() {
		if table != array.At(i) {
			tb.Fatalf("iteration and indexing disagree at %d", i)
		}
		name, _ := table.String("name")
		got = append(got, name)
	}
	if array.Len() == len(want) && slices.Equal(got, want) {
		return
	}
	tb.Fatalf(
		"unexpected tables"+
			"\n\tgot: %v (length %d)"+
			"\n\twant: %v",
		got, array.Len(), want)
}
