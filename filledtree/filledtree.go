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

// Package filledtree turns an updated skeleton into the fully hashed
// post-state trie: every Binary/Edge/Leaf index gets a concrete FilledNode,
// computed bottom-up with the two children of a Binary node hashed
// concurrently.
package filledtree

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/treehash"
	"github.com/starkware-libs/committer-go/trieindex"
	"github.com/starkware-libs/committer-go/updatedskeleton"
)

// FilledTree is the fully hashed post-state trie: a flat map from index to
// FilledNode, the same flat-DAG representation the skeleton passes use.
type FilledTree struct {
	Height uint8
	Nodes  map[trieindex.NodeIndex]node.FilledNode
}

// cell is a single-slot guard: written at most once, the recursion's only
// shared-mutable structure.
type cell struct {
	mu      sync.Mutex
	node    node.FilledNode
	written bool
}

func (c *cell) set(n node.FilledNode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.written {
		return errDoubleWrite
	}
	c.node = n
	c.written = true
	return nil
}

// Create computes the FilledTree for updated, fetching concrete leaf values
// from leafModifications and hashing with hashFn. Binary nodes hash their
// two children concurrently via an errgroup scoped to ctx; the first error
// encountered anywhere in the tree is returned once every in-flight branch
// has finished.
func Create(
	ctx context.Context,
	updated *updatedskeleton.UpdatedSkeleton,
	leafModifications map[trieindex.NodeIndex]node.Leaf,
	hashFn treehash.TreeHashFunction,
) (*FilledTree, error) {
	if len(updated.Nodes) == 0 {
		return &FilledTree{Height: updated.Height, Nodes: map[trieindex.NodeIndex]node.FilledNode{}}, nil
	}

	cells := make(map[trieindex.NodeIndex]*cell, len(updated.Nodes))
	for idx, entry := range updated.Nodes {
		switch entry.(type) {
		case node.UpdatedSkeletonSibling, node.UpdatedSkeletonUnmodifiedBottom:
			// Hash already known; no cell, no recursion ever lands here.
		default:
			cells[idx] = &cell{}
		}
	}

	if _, err := resolve(ctx, updated, leafModifications, hashFn, cells, trieindex.Root); err != nil {
		return nil, err
	}

	rootCell, ok := cells[trieindex.Root]
	if !ok || !rootCell.written {
		return nil, errMissingRoot
	}

	nodes := make(map[trieindex.NodeIndex]node.FilledNode, len(cells))
	for idx, c := range cells {
		nodes[idx] = c.node
	}
	return &FilledTree{Height: updated.Height, Nodes: nodes}, nil
}

// resolve computes the hash of index's subtree, writing every Binary/Edge/
// Leaf node it finalizes into cells along the way. Sibling and
// UnmodifiedBottom nodes return their carried hash without writing anything.
func resolve(
	ctx context.Context,
	updated *updatedskeleton.UpdatedSkeleton,
	leafModifications map[trieindex.NodeIndex]node.Leaf,
	hashFn treehash.TreeHashFunction,
	cells map[trieindex.NodeIndex]*cell,
	index trieindex.NodeIndex,
) (felt.HashOutput, error) {
	entry, ok := updated.Nodes[index]
	if !ok {
		return felt.HashOutput{}, fmt.Errorf("%w: index %s", errMissingNode, index)
	}

	switch v := entry.(type) {
	case node.UpdatedSkeletonSibling:
		return v.Hash, nil

	case node.UpdatedSkeletonUnmodifiedBottom:
		return v.Hash, nil

	case node.UpdatedSkeletonBinary:
		leftIdx, rightIdx := index.Children()
		g, gctx := errgroup.WithContext(ctx)
		var leftHash, rightHash felt.HashOutput
		g.Go(func() error {
			h, err := resolve(gctx, updated, leafModifications, hashFn, cells, leftIdx)
			if err != nil {
				return err
			}
			leftHash = h
			return nil
		})
		g.Go(func() error {
			h, err := resolve(gctx, updated, leafModifications, hashFn, cells, rightIdx)
			if err != nil {
				return err
			}
			rightHash = h
			return nil
		})
		if err := g.Wait(); err != nil {
			return felt.HashOutput{}, err
		}
		return finalize(cells, hashFn, index, node.Binary{LeftHash: leftHash, RightHash: rightHash})

	case node.UpdatedSkeletonEdge:
		bottomIdx := v.PathToBottom.BottomIndex(index)
		bottomHash, err := resolve(ctx, updated, leafModifications, hashFn, cells, bottomIdx)
		if err != nil {
			return felt.HashOutput{}, err
		}
		return finalize(cells, hashFn, index, node.Edge{BottomHash: bottomHash, PathToBottom: v.PathToBottom})

	case node.UpdatedSkeletonLeaf:
		leaf, ok := leafModifications[index]
		if !ok {
			return felt.HashOutput{}, fmt.Errorf("%w: index %s", errReadModifications, index)
		}
		if leaf.IsEmpty() {
			return felt.HashOutput{}, fmt.Errorf("%w: index %s", errInconsistentModification, index)
		}
		return finalize(cells, hashFn, index, node.LeafData{Leaf: leaf})

	default:
		return felt.HashOutput{}, fmt.Errorf("filledtree: unknown UpdatedSkeletonNode variant %T at index %s", entry, index)
	}
}

// finalize hashes data, writes the resulting FilledNode into index's cell,
// and returns the hash for the parent call to consume.
func finalize(cells map[trieindex.NodeIndex]*cell, hashFn treehash.TreeHashFunction, index trieindex.NodeIndex, data node.NodeData) (felt.HashOutput, error) {
	hash, err := hashFn.ComputeNodeHash(data)
	if err != nil {
		return felt.HashOutput{}, err
	}
	c, ok := cells[index]
	if !ok {
		return felt.HashOutput{}, fmt.Errorf("%w: index %s", errMissingNode, index)
	}
	if err := c.set(node.FilledNode{Hash: hash, Data: data}); err != nil {
		return felt.HashOutput{}, fmt.Errorf("%w: index %s", err, index)
	}
	return hash, nil
}

// GetRootHash returns the trie's root hash, or RootOfEmptyTree if t has no
// nodes at all.
func (t *FilledTree) GetRootHash() felt.HashOutput {
	root, ok := t.Nodes[trieindex.Root]
	if !ok {
		return felt.RootOfEmptyTree
	}
	return root.Hash
}

// Serialize renders every node in t as a storage key/value pair, ready to
// hand to a Storage collaborator's MSet.
func (t *FilledTree) Serialize() (map[string][]byte, error) {
	out := make(map[string][]byte, len(t.Nodes))
	for _, n := range t.Nodes {
		value, err := n.StorageValue()
		if err != nil {
			return nil, err
		}
		out[string(n.StorageKey())] = value
	}
	return out, nil
}
