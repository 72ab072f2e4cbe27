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

// Command fuzzcommit repeatedly builds a random state diff against an empty
// forest and checks that Commit's result does not depend on how many
// goroutines the storage-trie/classes-trie fan-out happens to schedule
// across: the same diff, committed under GOMAXPROCS 1, 2, 4 and 8, must
// produce the same contracts trie root hash and the same number of
// serialized nodes each time.
package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"runtime"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/forest"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/storage"
	"github.com/starkware-libs/committer-go/treehash"
)

const (
	treeHeight     = 16
	addressCount   = 64
	updatesPerAddr = 8
)

func main() {
	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)
		diff := randomDiff()

		ref, refNodes := commitAt(diff, 1)
		for _, workers := range []int{2, 4, 8} {
			got, gotNodes := commitAt(diff, workers)
			if got != ref {
				panic(fmt.Sprintf("GOMAXPROCS=%d: contracts root %s, want %s", workers, got, ref))
			}
			if len(gotNodes) != len(refNodes) {
				panic(fmt.Sprintf("GOMAXPROCS=%d: %d serialized nodes, want %d", workers, len(gotNodes), len(refNodes)))
			}
		}
	}
}

// commitAt runs Commit against a fresh empty pre-state under the given
// GOMAXPROCS, returning the contracts trie root hash and the aggregated
// serialized node set.
func commitAt(diff forest.StateDiff, workers int) (felt.HashOutput, map[string][]byte) {
	prev := runtime.GOMAXPROCS(workers)
	defer runtime.GOMAXPROCS(prev)

	in := forest.Input{
		Storage:               storage.NewMapStorage(),
		Diff:                  diff,
		TreeHeight:            treeHeight,
		ContractsTrieRootHash: felt.RootOfEmptyTree,
		ClassesTrieRootHash:   felt.RootOfEmptyTree,
	}
	out, err := forest.Commit(context.Background(), in, treehash.DefaultHashFunction{}, forest.Config{})
	if err != nil {
		panic(err)
	}
	return out.ContractsTrieRootHash, out.Storage
}

func randomDiff() forest.StateDiff {
	diff := forest.StateDiff{
		AddressToNonce:             make(map[felt.ContractAddress]felt.Nonce, addressCount),
		CurrentContractStateLeaves: make(map[felt.ContractAddress]node.ContractStateLeaf, addressCount),
		StorageUpdates:             make(map[felt.ContractAddress]map[felt.StorageKey]felt.StorageValue, addressCount),
	}
	for i := 0; i < addressCount; i++ {
		addr := felt.ContractAddress{Felt: randomFelt()}
		diff.AddressToNonce[addr] = felt.Nonce{Felt: randomFelt()}
		diff.CurrentContractStateLeaves[addr] = node.ContractStateLeaf{}

		updates := make(map[felt.StorageKey]felt.StorageValue, updatesPerAddr)
		for j := 0; j < updatesPerAddr; j++ {
			updates[felt.StorageKey{Felt: randomFelt()}] = felt.StorageValue{Felt: randomFelt()}
		}
		diff.StorageUpdates[addr] = updates
	}
	return diff
}

func randomFelt() felt.Felt {
	var b [felt.Bytes]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	f, err := felt.FromBytesBE(b[:])
	if err != nil {
		panic(err)
	}
	return f
}
