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

package storage

import "sync"

// MapStorage is a plain in-memory Storage backed by a Go map, guarded by a
// single mutex. It is the reference implementation used by tests and by
// the CLI driver to materialize the pre-state map it reads from disk.
type MapStorage struct {
	mu sync.Mutex
	m  map[string][]byte
}

// NewMapStorage returns an empty MapStorage.
func NewMapStorage() *MapStorage {
	return &MapStorage{m: make(map[string][]byte)}
}

// NewMapStorageFrom seeds a MapStorage from an existing key/value map,
// copying none of the byte slices: callers must not mutate them afterward.
func NewMapStorageFrom(seed map[string][]byte) *MapStorage {
	if seed == nil {
		seed = make(map[string][]byte)
	}
	return &MapStorage{m: seed}
}

func (s *MapStorage) Get(key []byte) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[string(key)]
	return v, ok
}

func (s *MapStorage) MGet(keys [][]byte) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(keys))
	for i, k := range keys {
		v, ok := s.m[string(k)]
		out[i] = Entry{Value: v, Found: ok}
	}
	return out
}

func (s *MapStorage) Set(key, value []byte) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.m[string(key)]
	s.m[string(key)] = value
	return prev, ok
}

func (s *MapStorage) MSet(kv map[string][]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range kv {
		s.m[k] = v
	}
}

func (s *MapStorage) Delete(key []byte) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.m[string(key)]
	delete(s.m, string(key))
	return prev, ok
}

// Len returns the number of entries currently stored, mostly for tests.
func (s *MapStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// Snapshot returns a shallow copy of the underlying map, for the fixture
// helper in fixture.go.
func (s *MapStorage) Snapshot() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]byte, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}
