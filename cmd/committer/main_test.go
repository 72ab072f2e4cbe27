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

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TestRunEndToEnd drives main's run helper against a throwaway block with
// one new storage write and one declared class, checking the output file
// carries non-empty hex root hashes under the two wire field names.
func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.json")
	outputPath := filepath.Join(dir, "output.json")

	input := []byte(`{
		"storage": [],
		"state_diff": {
			"address_to_class_hash": [],
			"address_to_nonce": [{"address": "0x7", "nonce": "0x1"}],
			"class_hash_to_compiled_class_hash": [{"class_hash": "0x6", "compiled_class_hash": "0x63"}],
			"storage_updates": [{"address": "0x7", "storage_updates": [{"key": "0x2", "value": "0x5"}]}],
			"current_contract_state_leaves": [{"address": "0x7", "nonce": "0x0", "storage_root_hash": "0x0", "class_hash": "0x0"}]
		},
		"tree_height": 3,
		"contracts_trie_root_hash": "0x0",
		"classes_trie_root_hash": "0x0"
	}`)
	if err := os.WriteFile(inputPath, input, 0o644); err != nil {
		t.Fatalf("writing input fixture: %v", err)
	}

	if err := run(inputPath, outputPath, false); err != nil {
		t.Fatalf("run: %v", err)
	}

	raw, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var out outputWire
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if out.ContractStorageRootHash.IsZero() {
		t.Fatal("contract_storage_root_hash should not be zero")
	}
	if out.CompiledClassRootHash.IsZero() {
		t.Fatal("compiled_class_root_hash should not be zero")
	}
}

// TestRunMissingInputFile checks that a nonexistent input path is reported
// through the ordinary error path rather than a panic.
func TestRunMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	err := run(filepath.Join(dir, "missing.json"), filepath.Join(dir, "out.json"), false)
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}
