// Package document provides a small, mutable view over TOML documents
// that need to be edited in place by a program while remaining
// readable and editable by humans.
//
// A [Document] keeps its arrays of tables (`[[name]]` blocks) as ordered
// [ArrayOfTables] collections supporting positional removal and appending.
// Every other top-level value is carried through untouched.
//
// A [Holder] pairs a Document with the program-facing values decoded
// from it, so that both sides can only be changed together
// (see [Holder.Edit]).
//
// None of the types in this package are safe for concurrent use;
// concurrent access must be guarded by the caller.
package document
