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

// Package node holds the trie's data types: the leaf capability set and its
// three concrete kinds, the tagged node-data shapes (Binary/Edge/Leaf), the
// skeleton node variants of the original and updated passes, and the final
// FilledNode.
package node

import (
	"encoding/json"
	"fmt"

	"github.com/starkware-libs/committer-go/felt"
)

// Leaf is the capability set every leaf kind must provide, so the
// original/updated skeleton and filled-tree engines handle every leaf kind
// through this one interface.
type Leaf interface {
	// IsEmpty reports whether every Felt the leaf carries is zero.
	IsEmpty() bool
	// StoragePrefix names the storage-key prefix used to persist this leaf
	// kind: "storage_leaf", "contract_class_leaf", or "contract_state_leaf".
	StoragePrefix() string
	// Serialize renders the leaf's on-disk value.
	Serialize() ([]byte, error)
}

// StorageValueLeaf is a single contract-storage slot value.
type StorageValueLeaf struct {
	Value felt.StorageValue
}

func (l StorageValueLeaf) IsEmpty() bool        { return l.Value.IsZero() }
func (l StorageValueLeaf) StoragePrefix() string { return "storage_leaf" }

func (l StorageValueLeaf) Serialize() ([]byte, error) {
	return l.Value.ToBytesBE(), nil
}

// DeserializeStorageValueLeaf parses the raw 32-byte encoding back into a
// StorageValueLeaf.
func DeserializeStorageValueLeaf(raw []byte) (StorageValueLeaf, error) {
	f, err := felt.FromBytesBE(raw)
	if err != nil {
		return StorageValueLeaf{}, fmt.Errorf("node: deserializing storage value leaf: %w", err)
	}
	return StorageValueLeaf{Value: felt.StorageValue{Felt: f}}, nil
}

// CompiledClassHashLeaf is a classes-trie leaf: the compiled Casm hash of a
// declared class.
type CompiledClassHashLeaf struct {
	Value felt.CompiledClassHash
}

func (l CompiledClassHashLeaf) IsEmpty() bool        { return l.Value.IsZero() }
func (l CompiledClassHashLeaf) StoragePrefix() string { return "contract_class_leaf" }

type compiledClassHashWire struct {
	CompiledClassHash string `json:"compiled_class_hash"`
}

func (l CompiledClassHashLeaf) Serialize() ([]byte, error) {
	return json.Marshal(compiledClassHashWire{CompiledClassHash: l.Value.Hex()})
}

// DeserializeCompiledClassHashLeaf parses the JSON encoding back into a
// CompiledClassHashLeaf.
func DeserializeCompiledClassHashLeaf(raw []byte) (CompiledClassHashLeaf, error) {
	var wire compiledClassHashWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return CompiledClassHashLeaf{}, fmt.Errorf("node: deserializing compiled class hash leaf: %w", err)
	}
	f, err := felt.FromHex(wire.CompiledClassHash)
	if err != nil {
		return CompiledClassHashLeaf{}, fmt.Errorf("node: deserializing compiled class hash leaf: %w", err)
	}
	return CompiledClassHashLeaf{Value: felt.CompiledClassHash{Felt: f}}, nil
}

// ContractStateHeight is the fixed height of every storage trie, embedded
// into the JSON wire form of ContractStateLeaf.
const ContractStateHeight = 251

// ContractStateLeaf is a contracts-trie leaf: a contract's post-state
// nonce, class hash, and storage-trie root.
type ContractStateLeaf struct {
	Nonce           felt.Nonce
	ClassHash       felt.ClassHash
	StorageRootHash felt.HashOutput
}

func (l ContractStateLeaf) IsEmpty() bool {
	return l.Nonce.IsZero() && l.ClassHash.IsZero() && l.StorageRootHash.IsZero()
}

func (l ContractStateLeaf) StoragePrefix() string { return "contract_state_leaf" }

type storageCommitmentTreeWire struct {
	Root   string `json:"root"`
	Height int    `json:"height"`
}

type contractStateWire struct {
	ContractHash          string                    `json:"contract_hash"`
	StorageCommitmentTree storageCommitmentTreeWire `json:"storage_commitment_tree"`
	Nonce                 string                    `json:"nonce"`
}

func (l ContractStateLeaf) Serialize() ([]byte, error) {
	return json.Marshal(contractStateWire{
		ContractHash: l.ClassHash.Hex(),
		StorageCommitmentTree: storageCommitmentTreeWire{
			Root:   l.StorageRootHash.Hex(),
			Height: ContractStateHeight,
		},
		Nonce: l.Nonce.Hex(),
	})
}

// DeserializeContractStateLeaf parses the JSON encoding back into a
// ContractStateLeaf.
func DeserializeContractStateLeaf(raw []byte) (ContractStateLeaf, error) {
	var wire contractStateWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return ContractStateLeaf{}, fmt.Errorf("node: deserializing contract state leaf: %w", err)
	}
	classHash, err := felt.FromHex(wire.ContractHash)
	if err != nil {
		return ContractStateLeaf{}, fmt.Errorf("node: deserializing contract state leaf class hash: %w", err)
	}
	root, err := felt.FromHex(wire.StorageCommitmentTree.Root)
	if err != nil {
		return ContractStateLeaf{}, fmt.Errorf("node: deserializing contract state leaf root: %w", err)
	}
	nonce, err := felt.FromHex(wire.Nonce)
	if err != nil {
		return ContractStateLeaf{}, fmt.Errorf("node: deserializing contract state leaf nonce: %w", err)
	}
	return ContractStateLeaf{
		Nonce:           felt.Nonce{Felt: nonce},
		ClassHash:       felt.ClassHash{Felt: classHash},
		StorageRootHash: felt.NewHashOutput(root),
	}, nil
}
