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

// OriginalSkeletonNode is one of the five witness-relevant node shapes the
// original-skeleton pass can record for a pre-state index.
type OriginalSkeletonNode interface {
	isOriginalSkeletonNode()
}

// OriginalSkeletonBinary marks an index whose both children are
// witness-relevant.
type OriginalSkeletonBinary struct{}

func (OriginalSkeletonBinary) isOriginalSkeletonNode() {}

// OriginalSkeletonEdge marks a compressed chain to a deeper
// witness-relevant node.
type OriginalSkeletonEdge struct {
	PathToBottom trieindex.PathToBottom
}

func (OriginalSkeletonEdge) isOriginalSkeletonNode() {}

// OriginalSkeletonLeafOrBinarySibling is a sibling off the modification
// path whose subtree hash is all that is needed.
type OriginalSkeletonLeafOrBinarySibling struct {
	Hash felt.HashOutput
}

func (OriginalSkeletonLeafOrBinarySibling) isOriginalSkeletonNode() {}

// OriginalSkeletonEdgeSibling is a sibling that remains an Edge; both its
// path and its bottom hash are retained.
type OriginalSkeletonEdgeSibling struct {
	EdgeData EdgeData
}

func (OriginalSkeletonEdgeSibling) isOriginalSkeletonNode() {}

// OriginalSkeletonUnmodifiedBottom is the bottom of an edge with no
// modified descendant.
type OriginalSkeletonUnmodifiedBottom struct {
	Hash felt.HashOutput
}

func (OriginalSkeletonUnmodifiedBottom) isOriginalSkeletonNode() {}
