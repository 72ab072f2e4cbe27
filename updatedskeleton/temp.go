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
	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/trieindex"
)

// tempNode is the not-yet-finalized result of resolving one subtree during
// the bottom-up rebuild. It is never stored in an
// UpdatedSkeleton directly; a parent call inspects it to decide how (or
// whether) to finalize the child it came from.
type tempNode interface {
	isTempNode()
}

type tempEmpty struct{}

func (tempEmpty) isTempNode() {}

var empty tempNode = tempEmpty{}

type tempLeaf struct {
	Leaf node.SkeletonLeaf
}

func (tempLeaf) isTempNode() {}

type tempBinary struct{}

func (tempBinary) isTempNode() {}

type tempEdge struct {
	Path trieindex.PathToBottom
}

func (tempEdge) isTempNode() {}

type tempSibling struct {
	Hash felt.HashOutput
}

func (tempSibling) isTempNode() {}

type tempEdgeSibling struct {
	EdgeData node.EdgeData
}

func (tempEdgeSibling) isTempNode() {}

type tempUnmodifiedBottom struct{}

func (tempUnmodifiedBottom) isTempNode() {}

// isEmpty reports whether a resolved subtree contributes nothing to the
// updated tree: either it was already Empty, or it is a deleted leaf.
func isEmpty(t tempNode) bool {
	switch v := t.(type) {
	case tempEmpty:
		return true
	case tempLeaf:
		return v.Leaf.IsZero()
	default:
		return false
	}
}
