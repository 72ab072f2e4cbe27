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

package felt

// HashOutput wraps a Felt that represents a node or root hash.
type HashOutput struct {
	Felt
}

// RootOfEmptyTree is the canonical root hash of a trie with no leaves.
var RootOfEmptyTree = HashOutput{Zero}

// NewHashOutput wraps f as a HashOutput.
func NewHashOutput(f Felt) HashOutput {
	return HashOutput{f}
}

// ClassHash identifies a compiled contract class.
type ClassHash struct {
	Felt
}

// Nonce is a contract's transaction nonce.
type Nonce struct {
	Felt
}

// StorageValue is a single contract-storage leaf value.
type StorageValue struct {
	Felt
}

// CompiledClassHash is the hash of a compiled class's Casm representation,
// the leaf value stored in the classes trie.
type CompiledClassHash struct {
	Felt
}

// ContractAddress identifies a contract within the contracts trie.
type ContractAddress struct {
	Felt
}

// StorageKey identifies a slot within a contract's storage trie.
type StorageKey struct {
	Felt
}
