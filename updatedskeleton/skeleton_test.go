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

package updatedskeleton

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/originalskeleton"
	"github.com/starkware-libs/committer-go/trieindex"
)

const testHeight uint8 = 3

func assertNodes(t *testing.T, got, want map[trieindex.NodeIndex]node.UpdatedSkeletonNode) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d nodes, want %d\ngot: %s\nwant: %s", len(got), len(want), spew.Sdump(got), spew.Sdump(want))
	}
	for idx, wantNode := range want {
		gotNode, ok := got[idx]
		if !ok {
			t.Fatalf("missing node at index %v, want %#v", idx, wantNode)
		}
		if gotNode != wantNode {
			t.Fatalf("node at index %v = %#v, want %#v", idx, gotNode, wantNode)
		}
	}
}

// TestCreateEmptyToEdge checks that an empty pre-state trie with a single
// new leaf collapses to one root-spanning edge.
func TestCreateEmptyToEdge(t *testing.T) {
	t.Parallel()

	original := &originalskeleton.OriginalSkeleton{Height: testHeight, Nodes: map[trieindex.NodeIndex]node.OriginalSkeletonNode{}}
	firstLeaf := trieindex.FirstLeaf(testHeight)
	mods := map[trieindex.NodeIndex]node.SkeletonLeaf{firstLeaf: node.SkeletonLeafNonZero}

	got := Create(original, mods)

	want := map[trieindex.NodeIndex]node.UpdatedSkeletonNode{
		trieindex.Root: node.UpdatedSkeletonEdge{PathToBottom: trieindex.PathToBottom{Length: testHeight}},
		firstLeaf:       node.UpdatedSkeletonLeaf{},
	}
	assertNodes(t, got.Nodes, want)
}

// TestCreateEmptyToBinary checks that two new sibling leaves force a
// Binary split one level above them.
func TestCreateEmptyToBinary(t *testing.T) {
	t.Parallel()

	original := &originalskeleton.OriginalSkeleton{Height: testHeight, Nodes: map[trieindex.NodeIndex]node.OriginalSkeletonNode{}}
	firstLeaf := trieindex.FirstLeaf(testHeight)
	firstLeafValue := firstLeaf.Uint256()
	firstLeafValue.AddUint64(&firstLeafValue, 1)
	leafPlusOne := trieindex.FromUint256(&firstLeafValue)

	mods := map[trieindex.NodeIndex]node.SkeletonLeaf{
		firstLeaf:   node.SkeletonLeafNonZero,
		leafPlusOne: node.SkeletonLeafNonZero,
	}

	got := Create(original, mods)

	parent := firstLeaf.ShiftRight(1)
	want := map[trieindex.NodeIndex]node.UpdatedSkeletonNode{
		trieindex.Root: node.UpdatedSkeletonEdge{PathToBottom: trieindex.PathToBottom{Length: testHeight - 1}},
		parent:         node.UpdatedSkeletonBinary{},
		firstLeaf:      node.UpdatedSkeletonLeaf{},
		leafPlusOne:    node.UpdatedSkeletonLeaf{},
	}
	assertNodes(t, got.Nodes, want)
}

// TestCreateNonEmptyToEmpty checks that deleting a trie's only leaf
// collapses the whole skeleton to nothing.
func TestCreateNonEmptyToEmpty(t *testing.T) {
	t.Parallel()

	firstLeaf := trieindex.FirstLeaf(testHeight)
	original := &originalskeleton.OriginalSkeleton{
		Height: testHeight,
		Nodes: map[trieindex.NodeIndex]node.OriginalSkeletonNode{
			trieindex.Root: node.OriginalSkeletonEdge{PathToBottom: trieindex.PathToBottom{Length: testHeight}},
		},
	}
	mods := map[trieindex.NodeIndex]node.SkeletonLeaf{firstLeaf: node.SkeletonLeafZero}

	got := Create(original, mods)

	if len(got.Nodes) != 0 {
		t.Fatalf("got %d nodes, want an empty skeleton: %s", len(got.Nodes), spew.Sdump(got.Nodes))
	}
}

// TestCreateReplaceEdgeBottom checks that deleting the leftmost leaf and
// writing its immediate sibling instead keeps a single edge at the root.
func TestCreateReplaceEdgeBottom(t *testing.T) {
	t.Parallel()

	firstLeaf := trieindex.FirstLeaf(testHeight)
	original := &originalskeleton.OriginalSkeleton{
		Height: testHeight,
		Nodes: map[trieindex.NodeIndex]node.OriginalSkeletonNode{
			trieindex.Root: node.OriginalSkeletonEdge{PathToBottom: trieindex.PathToBottom{Length: testHeight}},
		},
	}
	one := firstLeaf.Uint256()
	one.AddUint64(&one, 1)
	leafPlusOne := trieindex.FromUint256(&one)

	mods := map[trieindex.NodeIndex]node.SkeletonLeaf{
		firstLeaf:   node.SkeletonLeafZero,
		leafPlusOne: node.SkeletonLeafNonZero,
	}

	got := Create(original, mods)

	want := map[trieindex.NodeIndex]node.UpdatedSkeletonNode{
		trieindex.Root: node.UpdatedSkeletonEdge{PathToBottom: trieindex.PathToBottom{Path: *trieindex.FromUint64(1).Uint256Ptr(), Length: testHeight}},
		leafPlusOne:    node.UpdatedSkeletonLeaf{},
	}
	assertNodes(t, got.Nodes, want)
}
