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

// NodeData is the hashable payload of a filled node: exactly one of Binary,
// Edge, or Leaf. Modeled as an interface with a closed set of
// implementations, the same shape used for VerkleNode's
// Empty/LeafNode/HashedNode/InternalNode split.
type NodeData interface {
	isNodeData()
}

// Binary is the payload of a node with two filled children.
type Binary struct {
	LeftHash  felt.HashOutput
	RightHash felt.HashOutput
}

func (Binary) isNodeData() {}

// Edge is the payload of a compressed unary chain down to Bottom.
type Edge struct {
	BottomHash   felt.HashOutput
	PathToBottom trieindex.PathToBottom
}

func (Edge) isNodeData() {}

// LeafData wraps a concrete Leaf as a NodeData payload.
type LeafData struct {
	Leaf Leaf
}

func (LeafData) isNodeData() {}
