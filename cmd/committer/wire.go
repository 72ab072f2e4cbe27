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

import "github.com/starkware-libs/committer-go/felt"

// inputWire is the top-level JSON shape read from the input file: the
// pre-state trie nodes plus one block's state diff, both as flat entry
// lists rather than native JSON objects, since a contract address or class
// hash is not a legal JSON object key in this encoding.
type inputWire struct {
	Storage               []storageEntryWire `json:"storage"`
	StateDiff             stateDiffWire       `json:"state_diff"`
	TreeHeight            uint8               `json:"tree_height"`
	ContractsTrieRootHash felt.HashOutput     `json:"contracts_trie_root_hash"`
	ClassesTrieRootHash   felt.HashOutput     `json:"classes_trie_root_hash"`
}

// storageEntryWire is one pre-state key/value row. Both sides are opaque
// node bytes, hex-encoded rather than decoded as Felts.
type storageEntryWire struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type stateDiffWire struct {
	AddressToClassHash           []classHashEntryWire     `json:"address_to_class_hash"`
	AddressToNonce               []nonceEntryWire         `json:"address_to_nonce"`
	ClassHashToCompiledClassHash []compiledClassEntryWire `json:"class_hash_to_compiled_class_hash"`
	StorageUpdates               []storageUpdatesWire     `json:"storage_updates"`
	CurrentContractStateLeaves   []contractStateLeafWire  `json:"current_contract_state_leaves"`
}

type classHashEntryWire struct {
	Address   felt.ContractAddress `json:"address"`
	ClassHash felt.ClassHash       `json:"class_hash"`
}

type nonceEntryWire struct {
	Address felt.ContractAddress `json:"address"`
	Nonce   felt.Nonce           `json:"nonce"`
}

type compiledClassEntryWire struct {
	ClassHash         felt.ClassHash         `json:"class_hash"`
	CompiledClassHash felt.CompiledClassHash `json:"compiled_class_hash"`
}

type storageUpdateEntryWire struct {
	Key   felt.StorageKey   `json:"key"`
	Value felt.StorageValue `json:"value"`
}

type storageUpdatesWire struct {
	Address        felt.ContractAddress     `json:"address"`
	StorageUpdates []storageUpdateEntryWire `json:"storage_updates"`
}

type contractStateLeafWire struct {
	Address         felt.ContractAddress `json:"address"`
	Nonce           felt.Nonce           `json:"nonce"`
	StorageRootHash felt.HashOutput      `json:"storage_root_hash"`
	ClassHash       felt.ClassHash       `json:"class_hash"`
}

// outputWire is the top-level JSON shape written to the output file, using
// the same two root-hash field names the rest of the ecosystem's commit
// summaries use.
type outputWire struct {
	ContractStorageRootHash felt.HashOutput `json:"contract_storage_root_hash"`
	CompiledClassRootHash   felt.HashOutput `json:"compiled_class_root_hash"`
}
