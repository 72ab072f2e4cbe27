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

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// fixtureRecord is one key/value row of a dumped storage snapshot. Keys and
// values are opaque bytes, so both are base64-encoded for JSON transport.
type fixtureRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DumpFixture renders the storage's full contents as a regression fixture,
// the ambient test-tooling equivalent of
// committer_cli/src/tests/regression_tests.rs's storage dumps.
func DumpFixture(s *MapStorage) ([]byte, error) {
	snap := s.Snapshot()
	records := make([]fixtureRecord, 0, len(snap))
	for k, v := range snap {
		records = append(records, fixtureRecord{
			Key:   base64.StdEncoding.EncodeToString([]byte(k)),
			Value: base64.StdEncoding.EncodeToString(v),
		})
	}
	return json.Marshal(records)
}

// LoadFixture parses a fixture produced by DumpFixture into a fresh
// MapStorage.
func LoadFixture(raw []byte) (*MapStorage, error) {
	var records []fixtureRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("storage: parsing fixture: %w", err)
	}
	seed := make(map[string][]byte, len(records))
	for _, r := range records {
		k, err := base64.StdEncoding.DecodeString(r.Key)
		if err != nil {
			return nil, fmt.Errorf("storage: decoding fixture key: %w", err)
		}
		v, err := base64.StdEncoding.DecodeString(r.Value)
		if err != nil {
			return nil, fmt.Errorf("storage: decoding fixture value: %w", err)
		}
		seed[string(k)] = v
	}
	return NewMapStorageFrom(seed), nil
}
