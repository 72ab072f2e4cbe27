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

package node

import (
	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/trieindex"
)

// UpdatedSkeletonNode is one of the five shapes the updated-skeleton pass
// produces for a post-state index.
type UpdatedSkeletonNode interface {
	isUpdatedSkeletonNode()
}

// UpdatedSkeletonBinary marks an index with two non-empty children.
type UpdatedSkeletonBinary struct{}

func (UpdatedSkeletonBinary) isUpdatedSkeletonNode() {}

// UpdatedSkeletonEdge marks a compressed chain to a deeper node.
type UpdatedSkeletonEdge struct {
	PathToBottom trieindex.PathToBottom
}

func (UpdatedSkeletonEdge) isUpdatedSkeletonNode() {}

// UpdatedSkeletonSibling is an unmodified subtree retained only by hash.
type UpdatedSkeletonSibling struct {
	Hash felt.HashOutput
}

func (UpdatedSkeletonSibling) isUpdatedSkeletonNode() {}

// UpdatedSkeletonUnmodifiedBottom is the bottom of an edge with no modified
// descendant, carried over unchanged from the original skeleton.
type UpdatedSkeletonUnmodifiedBottom struct {
	Hash felt.HashOutput
}

func (UpdatedSkeletonUnmodifiedBottom) isUpdatedSkeletonNode() {}

// UpdatedSkeletonLeaf is a marker: the filled-tree pass will look up the
// concrete leaf value by index in the leaf-modifications map.
type UpdatedSkeletonLeaf struct{}

func (UpdatedSkeletonLeaf) isUpdatedSkeletonNode() {}
