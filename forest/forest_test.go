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

package forest

import (
	"context"
	"testing"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/storage"
	"github.com/starkware-libs/committer-go/treehash"
)

const testHeight uint8 = 3

func addr(v uint64) felt.ContractAddress   { return felt.ContractAddress{Felt: felt.New(v)} }
func classHash(v uint64) felt.ClassHash    { return felt.ClassHash{Felt: felt.New(v)} }
func storageKey(v uint64) felt.StorageKey  { return felt.StorageKey{Felt: felt.New(v)} }
func storageVal(v uint64) felt.StorageValue { return felt.StorageValue{Felt: felt.New(v)} }
func compiledHash(v uint64) felt.CompiledClassHash {
	return felt.CompiledClassHash{Felt: felt.New(v)}
}

// TestCommitFromEmptyForest builds a forest from scratch: one accessed
// address writing a single storage slot and a nonce, and one declared
// class, checking both post-state root hashes come out non-empty and the
// aggregated serialization map holds at least one new node.
func TestCommitFromEmptyForest(t *testing.T) {
	t.Parallel()

	a := addr(7)
	in := Input{
		Storage: storage.NewMapStorage(),
		Diff: StateDiff{
			AddressToNonce: map[felt.ContractAddress]felt.Nonce{
				a: {Felt: felt.New(1)},
			},
			ClassHashToCompiledClassHash: map[felt.ClassHash]felt.CompiledClassHash{
				classHash(6): compiledHash(99),
			},
			CurrentContractStateLeaves: map[felt.ContractAddress]node.ContractStateLeaf{
				a: {},
			},
			StorageUpdates: map[felt.ContractAddress]map[felt.StorageKey]felt.StorageValue{
				a: {storageKey(2): storageVal(5)},
			},
		},
		TreeHeight:            testHeight,
		ContractsTrieRootHash: felt.RootOfEmptyTree,
		ClassesTrieRootHash:   felt.RootOfEmptyTree,
	}

	got, err := Commit(context.Background(), in, treehash.AdditiveHashFunction{}, Config{})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got.ContractsTrieRootHash == felt.RootOfEmptyTree {
		t.Fatal("contracts trie root hash should not be the empty root")
	}
	if got.ClassesTrieRootHash == felt.RootOfEmptyTree {
		t.Fatal("classes trie root hash should not be the empty root")
	}
	if len(got.Storage) == 0 {
		t.Fatal("expected at least one newly written node")
	}
}

// TestCommitMissingCurrentContractStateIsFatal checks that an address with
// a storage update but no entry in CurrentContractStateLeaves is reported
// rather than silently treated as all-zero.
func TestCommitMissingCurrentContractStateIsFatal(t *testing.T) {
	t.Parallel()

	a := addr(3)
	in := Input{
		Storage: storage.NewMapStorage(),
		Diff: StateDiff{
			StorageUpdates: map[felt.ContractAddress]map[felt.StorageKey]felt.StorageValue{
				a: {storageKey(1): storageVal(1)},
			},
		},
		TreeHeight:            testHeight,
		ContractsTrieRootHash: felt.RootOfEmptyTree,
		ClassesTrieRootHash:   felt.RootOfEmptyTree,
	}

	_, err := Commit(context.Background(), in, treehash.AdditiveHashFunction{}, Config{})
	if err == nil {
		t.Fatal("expected an error for a missing current contract state")
	}
}

// TestCommitNonceOnlyAddressStillBuildsStorageTrie checks the Open Question
// decision recorded in DESIGN.md: an address with no storage_updates entry
// at all, only a nonce change, is still accessed and still gets a full
// (empty-modification) storage-trie pipeline run, carrying its pre-state
// storage root forward unchanged.
func TestCommitNonceOnlyAddressStillBuildsStorageTrie(t *testing.T) {
	t.Parallel()

	a := addr(11)
	priorRoot := felt.NewHashOutput(felt.New(42))
	in := Input{
		Storage: storage.NewMapStorage(),
		Diff: StateDiff{
			AddressToNonce: map[felt.ContractAddress]felt.Nonce{
				a: {Felt: felt.New(5)},
			},
			CurrentContractStateLeaves: map[felt.ContractAddress]node.ContractStateLeaf{
				a: {StorageRootHash: priorRoot},
			},
		},
		TreeHeight:            testHeight,
		ContractsTrieRootHash: felt.RootOfEmptyTree,
		ClassesTrieRootHash:   felt.RootOfEmptyTree,
	}

	got, err := Commit(context.Background(), in, treehash.AdditiveHashFunction{}, Config{})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got.ContractsTrieRootHash == felt.RootOfEmptyTree {
		t.Fatal("contracts trie root hash should not be the empty root")
	}
}

// TestAccessedAddressesUnion checks that an address appearing in more than
// one of the diff's maps is only reported once, and that the result is
// sorted ascending.
func TestAccessedAddressesUnion(t *testing.T) {
	t.Parallel()

	diff := StateDiff{
		AddressToClassHash: map[felt.ContractAddress]felt.ClassHash{
			addr(5): classHash(1),
		},
		AddressToNonce: map[felt.ContractAddress]felt.Nonce{
			addr(5): {Felt: felt.New(1)},
			addr(2): {Felt: felt.New(1)},
		},
		StorageUpdates: map[felt.ContractAddress]map[felt.StorageKey]felt.StorageValue{
			addr(9): {storageKey(1): storageVal(1)},
		},
	}

	got := accessedAddresses(diff)
	if len(got) != 3 {
		t.Fatalf("got %d accessed addresses, want 3", len(got))
	}
	want := []uint64{2, 5, 9}
	for i, w := range want {
		if got[i].Felt != felt.New(w) {
			t.Fatalf("accessedAddresses[%d] = %v, want %d", i, got[i], w)
		}
	}
}
