// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package storage defines the key-addressable backing store the core
// consumes for pre-state trie nodes, plus a small in-memory reference
// implementation used by tests and the CLI driver.
package storage

// Storage is the minimal key/value collaborator the core reads pre-state
// nodes from and the driver persists post-state nodes to. Keys and values
// are opaque byte sequences; keys produced by the core follow the node
// package's StorageKey/StorageValue encoding.
type Storage interface {
	// Get returns the value for key, and whether it was present.
	Get(key []byte) ([]byte, bool)
	// MGet returns the value for each key, in the same order, with Found=false
	// for keys that are absent.
	MGet(keys [][]byte) []Entry
	// Set stores value under key, returning the prior value if any.
	Set(key, value []byte) ([]byte, bool)
	// MSet bulk-inserts every key/value pair.
	MSet(kv map[string][]byte)
	// Delete removes key, returning the prior value if any.
	Delete(key []byte) ([]byte, bool)
}

// Entry is one result row of an MGet call.
type Entry struct {
	Value []byte
	Found bool
}
