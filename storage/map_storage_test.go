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

import "testing"

func TestMapStorageGetSetDelete(t *testing.T) {
	t.Parallel()

	s := NewMapStorage()
	if _, ok := s.Get([]byte("a")); ok {
		t.Fatal("Get on empty storage found a value")
	}

	prev, ok := s.Set([]byte("a"), []byte("1"))
	if ok || prev != nil {
		t.Fatalf("Set on new key returned prior value %v, ok=%v", prev, ok)
	}

	v, ok := s.Get([]byte("a"))
	if !ok || string(v) != "1" {
		t.Fatalf("Get = (%v, %v), want (1, true)", v, ok)
	}

	prev, ok = s.Set([]byte("a"), []byte("2"))
	if !ok || string(prev) != "1" {
		t.Fatalf("Set overwrite returned (%v, %v), want (1, true)", prev, ok)
	}

	prev, ok = s.Delete([]byte("a"))
	if !ok || string(prev) != "2" {
		t.Fatalf("Delete returned (%v, %v), want (2, true)", prev, ok)
	}
	if _, ok := s.Get([]byte("a")); ok {
		t.Fatal("Get after delete found a value")
	}
}

func TestMapStorageMGetMSet(t *testing.T) {
	t.Parallel()

	s := NewMapStorage()
	s.MSet(map[string][]byte{"a": []byte("1"), "b": []byte("2")})

	got := s.MGet([][]byte{[]byte("a"), []byte("missing"), []byte("b")})
	if len(got) != 3 {
		t.Fatalf("len(MGet) = %d, want 3", len(got))
	}
	if !got[0].Found || string(got[0].Value) != "1" {
		t.Fatalf("got[0] = %+v, want found 1", got[0])
	}
	if got[1].Found {
		t.Fatalf("got[1] = %+v, want not found", got[1])
	}
	if !got[2].Found || string(got[2].Value) != "2" {
		t.Fatalf("got[2] = %+v, want found 2", got[2])
	}
}

func TestFixtureRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewMapStorage()
	s.MSet(map[string][]byte{"a": []byte("1"), "b": []byte("2")})

	raw, err := DumpFixture(s)
	if err != nil {
		t.Fatalf("DumpFixture: %v", err)
	}
	loaded, err := LoadFixture(raw)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("loaded.Len() = %d, want 2", loaded.Len())
	}
	v, ok := loaded.Get([]byte("a"))
	if !ok || string(v) != "1" {
		t.Fatalf("loaded[a] = (%v, %v), want (1, true)", v, ok)
	}
}
