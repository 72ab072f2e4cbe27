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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/forest"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/storage"
)

// toForestInput casts the flat, array-of-entries wire shape into the native
// Go maps forest.Input expects. Duplicate keys within one array silently let
// the later entry win, the same last-write-wins behavior Go's own map
// literals have.
func toForestInput(w inputWire) (forest.Input, error) {
	seed := make(map[string][]byte, len(w.Storage))
	for i, e := range w.Storage {
		key, err := decodeHex(e.Key)
		if err != nil {
			return forest.Input{}, fmt.Errorf("committer: storage entry %d key: %w", i, err)
		}
		value, err := decodeHex(e.Value)
		if err != nil {
			return forest.Input{}, fmt.Errorf("committer: storage entry %d value: %w", i, err)
		}
		seed[string(key)] = value
	}

	diff := forest.StateDiff{
		AddressToClassHash:           make(map[felt.ContractAddress]felt.ClassHash, len(w.StateDiff.AddressToClassHash)),
		AddressToNonce:               make(map[felt.ContractAddress]felt.Nonce, len(w.StateDiff.AddressToNonce)),
		ClassHashToCompiledClassHash: make(map[felt.ClassHash]felt.CompiledClassHash, len(w.StateDiff.ClassHashToCompiledClassHash)),
		CurrentContractStateLeaves:   make(map[felt.ContractAddress]node.ContractStateLeaf, len(w.StateDiff.CurrentContractStateLeaves)),
		StorageUpdates:               make(map[felt.ContractAddress]map[felt.StorageKey]felt.StorageValue, len(w.StateDiff.StorageUpdates)),
	}
	for _, e := range w.StateDiff.AddressToClassHash {
		diff.AddressToClassHash[e.Address] = e.ClassHash
	}
	for _, e := range w.StateDiff.AddressToNonce {
		diff.AddressToNonce[e.Address] = e.Nonce
	}
	for _, e := range w.StateDiff.ClassHashToCompiledClassHash {
		diff.ClassHashToCompiledClassHash[e.ClassHash] = e.CompiledClassHash
	}
	for _, e := range w.StateDiff.CurrentContractStateLeaves {
		diff.CurrentContractStateLeaves[e.Address] = node.ContractStateLeaf{
			Nonce:           e.Nonce,
			ClassHash:       e.ClassHash,
			StorageRootHash: e.StorageRootHash,
		}
	}
	for _, su := range w.StateDiff.StorageUpdates {
		updates := make(map[felt.StorageKey]felt.StorageValue, len(su.StorageUpdates))
		for _, e := range su.StorageUpdates {
			updates[e.Key] = e.Value
		}
		diff.StorageUpdates[su.Address] = updates
	}

	return forest.Input{
		Storage:               storage.NewMapStorageFrom(seed),
		Diff:                  diff,
		TreeHeight:            w.TreeHeight,
		ContractsTrieRootHash: w.ContractsTrieRootHash,
		ClassesTrieRootHash:   w.ClassesTrieRootHash,
	}, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

func toOutputWire(out *forest.Output) outputWire {
	return outputWire{
		ContractStorageRootHash: out.ContractsTrieRootHash,
		CompiledClassRootHash:   out.ClassesTrieRootHash,
	}
}
