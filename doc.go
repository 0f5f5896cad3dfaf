// Package recents maintains a bounded list of recently used items,
// kept in lockstep with the TOML document it is persisted as.
//
// The list is held by a [document.Holder] alongside its document.
// Each entry in the list has a matching `[[recent]]` table in the document:
//
//	[[recent]]
//	url = "file:///least/recent.swf"
//
//	[[recent]]
//	url = "file:///most/recent.swf"
//
// Glossary and invariants:
//
//   - Recency order
//
//     Index 0 is the least recently used entry, the last index is the most recent.
//     The document lists its tables in the same order.
//
//   - Mirroring
//
//     The list and the document always have the same length,
//     and the table at index i holds the URL of the entry at index i.
//     This holds before and after every [Writer] operation.
//
//   - Uniqueness
//
//     No two entries share a URL. URLs are compared by their textual form.
//
// Operations:
//
//   - Push
//
//     Adds an entry at the most recent position.
//     If the URL is already present, the existing entry is moved there instead.
//     If the list is at (or above) the limit, the least recent entries are evicted
//     until there is room for exactly one more.
//
//   - Move to top
//
//     Tables removed from a document cannot be handed back,
//     so a moved entry's table is recreated from its URL alone.
//     Any other fields a person added to that table are dropped.
//
//   - Limit
//
//     The capacity is supplied on every push, never stored.
//     Lowering it does not trim the list by itself;
//     the next push of a new URL evicts enough entries to fit under it.
//
// Building with the `recents_debug` tag asserts the mirroring invariant
// around every [Writer] operation.
package recents
