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

// Package originalskeleton implements the read-only pre-state traversal:
// given a pre-state root and a sorted list of modified leaf indices, it
// reconstructs only the sub-skeleton of the pre-state trie that is
// witness-relevant to those modifications.
package originalskeleton

import (
	"fmt"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/storage"
	"github.com/starkware-libs/committer-go/trieindex"
)

// OriginalSkeleton is the witness-relevant subset of a pre-state trie,
// keyed by NodeIndex.
type OriginalSkeleton struct {
	Height uint8
	Nodes  map[trieindex.NodeIndex]node.OriginalSkeletonNode
}

type subtreeTask struct {
	rootIndex trieindex.NodeIndex
	rootHash  felt.HashOutput
	leaves    []trieindex.NodeIndex
}

// CreateTree builds the OriginalSkeleton witnessing sortedLeafIndices against
// rootHash in a height-H trie backed by store. sortedLeafIndices must be
// sorted ascending; violating this is a programmer error.
//
// A rootHash of felt.RootOfEmptyTree short-circuits: an empty pre-state trie
// has no stored nodes to witness, so the skeleton is empty regardless of
// sortedLeafIndices.
func CreateTree(
	store storage.Storage,
	sortedLeafIndices []trieindex.NodeIndex,
	rootHash felt.HashOutput,
	height uint8,
	cfg Config,
) (*OriginalSkeleton, []TrivialModification, error) {
	skeleton := &OriginalSkeleton{Height: height, Nodes: map[trieindex.NodeIndex]node.OriginalSkeletonNode{}}
	if rootHash == felt.RootOfEmptyTree {
		return skeleton, nil, nil
	}
	var warnings []TrivialModification

	queue := []subtreeTask{{rootIndex: trieindex.Root, rootHash: rootHash, leaves: sortedLeafIndices}}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		if trieindex.SubtreeHeight(t.rootIndex, height) == 0 {
			if len(t.leaves) == 0 {
				skeleton.Nodes[t.rootIndex] = node.OriginalSkeletonLeafOrBinarySibling{Hash: t.rootHash}
				continue
			}
			if cfg.CompareModifiedLeaves && cfg.LookupPreviousLeaf != nil {
				prev, found, err := cfg.LookupPreviousLeaf(t.rootIndex)
				if err != nil {
					return nil, nil, fmt.Errorf("originalskeleton: comparing leaf at %v: %w", t.rootIndex, err)
				}
				if found && cfg.CompareLeaf != nil && cfg.CompareLeaf(t.rootIndex, prev) {
					warnings = append(warnings, TrivialModification{Index: t.rootIndex})
				}
			}
			continue
		}

		raw, found := store.Get(node.InnerNodeStorageKey(t.rootHash))
		if !found {
			return nil, nil, fmt.Errorf("%w: index %v, hash %s", errStorageRead, t.rootIndex, t.rootHash)
		}
		data, err := node.DeserializeInnerNode(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("originalskeleton: index %v: %w", t.rootIndex, err)
		}

		switch d := data.(type) {
		case node.Binary:
			if len(t.leaves) == 0 {
				skeleton.Nodes[t.rootIndex] = node.OriginalSkeletonLeafOrBinarySibling{Hash: t.rootHash}
				continue
			}
			skeleton.Nodes[t.rootIndex] = node.OriginalSkeletonBinary{}
			left, right := trieindex.SplitLeaves(t.rootIndex, t.leaves, height)
			leftIdx, rightIdx := t.rootIndex.Children()
			queue = append(queue,
				subtreeTask{rootIndex: leftIdx, rootHash: d.LeftHash, leaves: left},
				subtreeTask{rootIndex: rightIdx, rootHash: d.RightHash, leaves: right},
			)

		case node.Edge:
			skeleton.Nodes[t.rootIndex] = node.OriginalSkeletonEdge{PathToBottom: d.PathToBottom}
			bottomIndex := d.PathToBottom.BottomIndex(t.rootIndex)
			if len(t.leaves) == 0 {
				skeleton.Nodes[bottomIndex] = node.OriginalSkeletonUnmodifiedBottom{Hash: d.BottomHash}
				continue
			}
			first, last := trieindex.LeafRange(bottomIndex, height)
			bottomLeaves := trieindex.BisectRange(t.leaves, first, last)
			queue = append(queue, subtreeTask{rootIndex: bottomIndex, rootHash: d.BottomHash, leaves: bottomLeaves})

		default:
			return nil, nil, fmt.Errorf("originalskeleton: index %v: %w", t.rootIndex, node.ErrMalformedNode)
		}
	}

	return skeleton, warnings, nil
}
