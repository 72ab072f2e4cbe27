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
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/trieindex"
)

// nodeFromBinaryData resolves a node whose two children (already recursively
// resolved to left/right) sit at leftIdx/rightIdx. Both children empty
// collapses to Empty; exactly one empty collapses the pair
// into a one-step Edge toward the surviving side (which nodeFromEdgeData may
// then merge further with whatever is below it); both non-empty finalizes
// this node as Binary and finalizes each child in turn.
func nodeFromBinaryData(leftIdx, rightIdx trieindex.NodeIndex, left, right tempNode, updated *UpdatedSkeleton) tempNode {
	leftEmpty, rightEmpty := isEmpty(left), isEmpty(right)
	switch {
	case leftEmpty && rightEmpty:
		return empty
	case leftEmpty:
		return nodeFromEdgeData(trieindex.RightChild, rightIdx, right, updated)
	case rightEmpty:
		return nodeFromEdgeData(trieindex.LeftChild, leftIdx, left, updated)
	default:
		finalize(updated, leftIdx, left)
		finalize(updated, rightIdx, right)
		return tempBinary{}
	}
}

// nodeFromEdgeData resolves a node that reaches bottomIndex via path. What
// the bottom resolved to determines whether this edge
// disappears (Empty bottom, or a Zero leaf bottom), extends by concatenating
// paths (Edge/EdgeSibling bottoms), or terminates here (a Binary bottom is
// finalized in place; a sibling or unmodified bottom needs no further work,
// since the seed step already recorded it verbatim).
func nodeFromEdgeData(path trieindex.PathToBottom, bottomIndex trieindex.NodeIndex, bottom tempNode, updated *UpdatedSkeleton) tempNode {
	switch b := bottom.(type) {
	case tempEmpty:
		return empty
	case tempLeaf:
		if b.Leaf.IsZero() {
			return empty
		}
		return tempEdge{Path: path}
	case tempEdge:
		return tempEdge{Path: trieindex.Concat(path, b.Path)}
	case tempEdgeSibling:
		return tempEdgeSibling{EdgeData: node.EdgeData{
			BottomHash:   b.EdgeData.BottomHash,
			PathToBottom: trieindex.Concat(path, b.EdgeData.PathToBottom),
		}}
	case tempBinary:
		finalize(updated, bottomIndex, b)
		return tempEdge{Path: path}
	case tempSibling, tempUnmodifiedBottom:
		return tempEdge{Path: path}
	default:
		return tempEdge{Path: path}
	}
}

// finalize writes idx's resolved shape into updated, the point at which a
// parent decides to keep a child. tempLeaf and tempEmpty need no write:
// Leaf markers are seeded up front for every NonZero modification, and
// Empty contributes nothing.
func finalize(updated *UpdatedSkeleton, idx trieindex.NodeIndex, t tempNode) {
	switch v := t.(type) {
	case tempBinary:
		updated.Nodes[idx] = node.UpdatedSkeletonBinary{}
	case tempEdge:
		updated.Nodes[idx] = node.UpdatedSkeletonEdge{PathToBottom: v.Path}
	case tempSibling:
		updated.Nodes[idx] = node.UpdatedSkeletonSibling{Hash: v.Hash}
	case tempEdgeSibling:
		bottomIdx := v.EdgeData.PathToBottom.BottomIndex(idx)
		updated.Nodes[bottomIdx] = node.UpdatedSkeletonSibling{Hash: v.EdgeData.BottomHash}
		updated.Nodes[idx] = node.UpdatedSkeletonEdge{PathToBottom: v.EdgeData.PathToBottom}
	}
}
