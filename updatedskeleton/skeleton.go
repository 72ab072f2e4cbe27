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

// Package updatedskeleton takes an OriginalSkeleton and a map of leaf
// modifications and rebuilds the post-state skeleton,
// seeding unmodified structure verbatim and recomputing everything the
// modifications touch bottom-up, collapsing unary chains into edges as it
// goes (the trie's maximal-compression invariant).
package updatedskeleton

import (
	"sort"

	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/originalskeleton"
	"github.com/starkware-libs/committer-go/trieindex"
)

// UpdatedSkeleton is the post-state skeleton: every Binary, Edge and Leaf
// index on it gets a FilledNode computed by the next pass; Sibling and
// UnmodifiedBottom entries only supply an already-known hash.
type UpdatedSkeleton struct {
	Height uint8
	Nodes  map[trieindex.NodeIndex]node.UpdatedSkeletonNode
}

// Create builds the UpdatedSkeleton for original with leafModifications
// applied.
//
// Seed: every LeafOrBinarySibling and UnmodifiedBottom entry of original is
// copied verbatim, and a Leaf marker is recorded for every NonZero
// modification. Bottom-up rebuild: starting at the root, nodeFromBinaryData
// and nodeFromEdgeData (construct.go) resolve every index the
// modifications touch, finalizing Binary/Edge/Sibling shapes into the result
// as they go. If the whole trie resolves to Empty, the result has no nodes
// at all (as when deleting a trie's only leaf).
func Create(original *originalskeleton.OriginalSkeleton, leafModifications map[trieindex.NodeIndex]node.SkeletonLeaf) *UpdatedSkeleton {
	updated := &UpdatedSkeleton{Height: original.Height, Nodes: map[trieindex.NodeIndex]node.UpdatedSkeletonNode{}}

	for idx, entry := range original.Nodes {
		switch e := entry.(type) {
		case node.OriginalSkeletonLeafOrBinarySibling:
			updated.Nodes[idx] = node.UpdatedSkeletonSibling{Hash: e.Hash}
		case node.OriginalSkeletonUnmodifiedBottom:
			updated.Nodes[idx] = node.UpdatedSkeletonUnmodifiedBottom{Hash: e.Hash}
		}
	}
	for idx, leaf := range leafModifications {
		if !leaf.IsZero() {
			updated.Nodes[idx] = node.UpdatedSkeletonLeaf{}
		}
	}

	leaves := make([]trieindex.NodeIndex, 0, len(leafModifications))
	for idx := range leafModifications {
		leaves = append(leaves, idx)
	}
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Less(leaves[j]) })

	root := resolve(original.Nodes, leaves, leafModifications, trieindex.Root, original.Height, updated)
	if isEmpty(root) {
		updated.Nodes = map[trieindex.NodeIndex]node.UpdatedSkeletonNode{}
		return updated
	}
	finalize(updated, trieindex.Root, root)
	return updated
}

// resolve computes the tempNode for index, the subtree rooted there once
// original is overlaid with leafModifications. Where original has no
// witness at all (a brand-new subtree), it discovers structure by walking
// the implicit binary tree down to the modified leaves beneath index,
// exactly as a from-scratch insertion would. Where original has an Edge, it
// defers to resolveEdge: an inherited edge's path may not fully agree with
// where a new leaf needs to go, so the edge has to be walked one level at a
// time rather than jumped to its bottom in one hop.
func resolve(
	original map[trieindex.NodeIndex]node.OriginalSkeletonNode,
	leaves []trieindex.NodeIndex,
	leafModifications map[trieindex.NodeIndex]node.SkeletonLeaf,
	index trieindex.NodeIndex,
	height uint8,
	updated *UpdatedSkeleton,
) tempNode {
	if entry, ok := original[index]; ok {
		switch e := entry.(type) {
		case node.OriginalSkeletonBinary:
			left, right := trieindex.SplitLeaves(index, leaves, height)
			leftIdx, rightIdx := index.Children()
			lt := resolve(original, left, leafModifications, leftIdx, height, updated)
			rt := resolve(original, right, leafModifications, rightIdx, height, updated)
			return nodeFromBinaryData(leftIdx, rightIdx, lt, rt, updated)

		case node.OriginalSkeletonEdge:
			return resolveEdge(original, e.PathToBottom, index, leaves, leafModifications, height, updated)

		case node.OriginalSkeletonLeafOrBinarySibling:
			return tempSibling{Hash: e.Hash}

		case node.OriginalSkeletonEdgeSibling:
			return tempEdgeSibling{EdgeData: e.EdgeData}

		case node.OriginalSkeletonUnmodifiedBottom:
			return tempUnmodifiedBottom{}
		}
	}

	if trieindex.SubtreeHeight(index, height) == 0 {
		if leaf, ok := leafModifications[index]; ok {
			return tempLeaf{Leaf: leaf}
		}
		return empty
	}
	if len(leaves) == 0 {
		return empty
	}

	left, right := trieindex.SplitLeaves(index, leaves, height)
	leftIdx, rightIdx := index.Children()
	lt := resolve(original, left, leafModifications, leftIdx, height, updated)
	rt := resolve(original, right, leafModifications, rightIdx, height, updated)
	return nodeFromBinaryData(leftIdx, rightIdx, lt, rt, updated)
}

// resolveEdge walks an inherited edge one bit at a time. At each step the
// leaves under index split, as usual, about index's midpoint; the side that
// continues along the edge's path recurses into resolveEdge again (or, once
// the path is exhausted, back into resolve at the true bottom index, picking
// up whatever original structure genuinely exists there); the other side has
// no witness at all and falls back to the ordinary insertion-from-scratch
// path in resolve. A leaf that diverges from the edge's path is what forces
// the two sides apart; nodeFromBinaryData/nodeFromEdgeData then collapse
// whatever didn't change back down into a single edge on the way back up.
func resolveEdge(
	original map[trieindex.NodeIndex]node.OriginalSkeletonNode,
	path trieindex.PathToBottom,
	index trieindex.NodeIndex,
	leaves []trieindex.NodeIndex,
	leafModifications map[trieindex.NodeIndex]node.SkeletonLeaf,
	height uint8,
	updated *UpdatedSkeleton,
) tempNode {
	if path.Length == 0 {
		return resolve(original, leaves, leafModifications, index, height, updated)
	}

	bit, rest := path.SplitFirstBit()
	leftLeaves, rightLeaves := trieindex.SplitLeaves(index, leaves, height)
	leftIdx, rightIdx := index.Children()

	var lt, rt tempNode
	if bit == 0 {
		lt = resolveEdge(original, rest, leftIdx, leftLeaves, leafModifications, height, updated)
		rt = resolve(original, rightLeaves, leafModifications, rightIdx, height, updated)
	} else {
		lt = resolve(original, leftLeaves, leafModifications, leftIdx, height, updated)
		rt = resolveEdge(original, rest, rightIdx, rightLeaves, leafModifications, height, updated)
	}
	return nodeFromBinaryData(leftIdx, rightIdx, lt, rt, updated)
}
