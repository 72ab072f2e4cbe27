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

package filledtree

import (
	"context"
	"runtime"
	"testing"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/treehash"
	"github.com/starkware-libs/committer-go/trieindex"
	"github.com/starkware-libs/committer-go/updatedskeleton"
)

const testHeight uint8 = 3

// TestCreateEmptyToEdge hashes the single-leaf updated skeleton an empty
// trie produces for one new leaf: a root edge straight to the leaf, with
// AdditiveHashFunction making the expected root hash easy to check by hand
// (bottom value 1, path 0, length 3, summed).
func TestCreateEmptyToEdge(t *testing.T) {
	t.Parallel()

	firstLeaf := trieindex.FirstLeaf(testHeight)
	updated := &updatedskeleton.UpdatedSkeleton{
		Height: testHeight,
		Nodes: map[trieindex.NodeIndex]node.UpdatedSkeletonNode{
			trieindex.Root: node.UpdatedSkeletonEdge{PathToBottom: trieindex.PathToBottom{Length: testHeight}},
			firstLeaf:       node.UpdatedSkeletonLeaf{},
		},
	}
	mods := map[trieindex.NodeIndex]node.Leaf{
		firstLeaf: node.StorageValueLeaf{Value: felt.StorageValue{Felt: felt.New(1)}},
	}

	got, err := Create(context.Background(), updated, mods, treehash.AdditiveHashFunction{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.GetRootHash() != felt.NewHashOutput(felt.New(4)) {
		t.Fatalf("root hash = %s, want 4", got.GetRootHash())
	}
	if len(got.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(got.Nodes))
	}
}

// TestCreateBinarySplit hashes a two-leaf updated skeleton (a Binary one
// level above two written leaves, reached from the root by a one-bit edge),
// checking every level's hash composes correctly.
func TestCreateBinarySplit(t *testing.T) {
	t.Parallel()

	firstLeaf := trieindex.FirstLeaf(testHeight)
	second := trieindex.FromUint64(firstLeaf.Uint256().Uint64() + 1)
	parent := firstLeaf.ShiftRight(1)

	updated := &updatedskeleton.UpdatedSkeleton{
		Height: testHeight,
		Nodes: map[trieindex.NodeIndex]node.UpdatedSkeletonNode{
			trieindex.Root: node.UpdatedSkeletonEdge{PathToBottom: trieindex.PathToBottom{Length: testHeight - 1}},
			parent:         node.UpdatedSkeletonBinary{},
			firstLeaf:      node.UpdatedSkeletonLeaf{},
			second:         node.UpdatedSkeletonLeaf{},
		},
	}
	mods := map[trieindex.NodeIndex]node.Leaf{
		firstLeaf: node.StorageValueLeaf{Value: felt.StorageValue{Felt: felt.New(2)}},
		second:    node.StorageValueLeaf{Value: felt.StorageValue{Felt: felt.New(3)}},
	}

	got, err := Create(context.Background(), updated, mods, treehash.AdditiveHashFunction{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Binary(2,3) = 5; Edge(bottom=5, path=0, length=2) = 5 + 0 + 2 = 7.
	if got.GetRootHash() != felt.NewHashOutput(felt.New(7)) {
		t.Fatalf("root hash = %s, want 7", got.GetRootHash())
	}
	if len(got.Nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(got.Nodes))
	}
}

// TestCreateEmptySkeletonIsEmptyTree checks the degenerate all-deleted case:
// an empty updated skeleton produces an empty filled tree whose root hash is
// RootOfEmptyTree, without touching the hash function at all.
func TestCreateEmptySkeletonIsEmptyTree(t *testing.T) {
	t.Parallel()

	updated := &updatedskeleton.UpdatedSkeleton{Height: testHeight, Nodes: map[trieindex.NodeIndex]node.UpdatedSkeletonNode{}}
	got, err := Create(context.Background(), updated, nil, treehash.AdditiveHashFunction{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.GetRootHash() != felt.RootOfEmptyTree {
		t.Fatalf("root hash = %s, want RootOfEmptyTree", got.GetRootHash())
	}
	if len(got.Nodes) != 0 {
		t.Fatalf("got %d nodes, want 0", len(got.Nodes))
	}
}

// TestCreateMissingLeafModificationIsFatal checks the ReadModifications
// failure path: a Leaf marker with no corresponding entry in the supplied
// modifications map.
func TestCreateMissingLeafModificationIsFatal(t *testing.T) {
	t.Parallel()

	firstLeaf := trieindex.FirstLeaf(testHeight)
	updated := &updatedskeleton.UpdatedSkeleton{
		Height: testHeight,
		Nodes: map[trieindex.NodeIndex]node.UpdatedSkeletonNode{
			trieindex.Root: node.UpdatedSkeletonEdge{PathToBottom: trieindex.PathToBottom{Length: testHeight}},
			firstLeaf:       node.UpdatedSkeletonLeaf{},
		},
	}
	_, err := Create(context.Background(), updated, map[trieindex.NodeIndex]node.Leaf{}, treehash.AdditiveHashFunction{})
	if err == nil {
		t.Fatal("expected an error for a missing leaf modification")
	}
}

// TestCreateInconsistentModificationIsFatal checks that an empty concrete
// leaf value under a Leaf marker (which only ever exists for a non-zero
// modification) is reported rather than silently hashed.
func TestCreateInconsistentModificationIsFatal(t *testing.T) {
	t.Parallel()

	firstLeaf := trieindex.FirstLeaf(testHeight)
	updated := &updatedskeleton.UpdatedSkeleton{
		Height: testHeight,
		Nodes: map[trieindex.NodeIndex]node.UpdatedSkeletonNode{
			trieindex.Root: node.UpdatedSkeletonEdge{PathToBottom: trieindex.PathToBottom{Length: testHeight}},
			firstLeaf:       node.UpdatedSkeletonLeaf{},
		},
	}
	mods := map[trieindex.NodeIndex]node.Leaf{
		firstLeaf: node.StorageValueLeaf{Value: felt.StorageValue{Felt: felt.Zero}},
	}
	_, err := Create(context.Background(), updated, mods, treehash.AdditiveHashFunction{})
	if err == nil {
		t.Fatal("expected an error for an empty leaf under a Leaf marker")
	}
}

// TestCreateConcurrentDeterminism reproduces the pipeline's concurrent
// determinism property: the same updated skeleton, hashed under GOMAXPROCS
// values of 1, 2, 4, and 8, always yields the same root hash and the same
// serialized node set. Height 1 puts both of the root's children directly at
// the leaves.
func TestCreateConcurrentDeterminism(t *testing.T) {
	const height uint8 = 1
	left := trieindex.FirstLeaf(height)
	right := trieindex.FromUint64(left.Uint256().Uint64() + 1)

	updated := &updatedskeleton.UpdatedSkeleton{
		Height: height,
		Nodes: map[trieindex.NodeIndex]node.UpdatedSkeletonNode{
			trieindex.Root: node.UpdatedSkeletonBinary{},
			left:           node.UpdatedSkeletonLeaf{},
			right:          node.UpdatedSkeletonLeaf{},
		},
	}
	mods := map[trieindex.NodeIndex]node.Leaf{
		left:  node.StorageValueLeaf{Value: felt.StorageValue{Felt: felt.New(5)}},
		right: node.StorageValueLeaf{Value: felt.StorageValue{Felt: felt.New(7)}},
	}

	prevMaxProcs := runtime.GOMAXPROCS(0)
	defer runtime.GOMAXPROCS(prevMaxProcs)

	var wantHash felt.HashOutput
	var wantNodes map[string][]byte

	for i, workers := range []int{1, 2, 4, 8} {
		runtime.GOMAXPROCS(workers)
		got, err := Create(context.Background(), updated, mods, treehash.AdditiveHashFunction{})
		if err != nil {
			t.Fatalf("Create (GOMAXPROCS=%d): %v", workers, err)
		}
		serialized, err := got.Serialize()
		if err != nil {
			t.Fatalf("Serialize (GOMAXPROCS=%d): %v", workers, err)
		}
		if i == 0 {
			wantHash = got.GetRootHash()
			wantNodes = serialized
			continue
		}
		if got.GetRootHash() != wantHash {
			t.Fatalf("GOMAXPROCS=%d: root hash = %s, want %s", workers, got.GetRootHash(), wantHash)
		}
		if len(serialized) != len(wantNodes) {
			t.Fatalf("GOMAXPROCS=%d: got %d serialized nodes, want %d", workers, len(serialized), len(wantNodes))
		}
		for k, v := range wantNodes {
			if string(serialized[k]) != string(v) {
				t.Fatalf("GOMAXPROCS=%d: serialized[%q] differs from the GOMAXPROCS=1 run", workers, k)
			}
		}
	}
}
