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

// Package treehash implements the TreeHashFunction collaborator: a
// leaf-kind-specific hash rule plus the inner-node composition rule that
// sits on top of it. DefaultHashFunction is the production Pedersen/Poseidon
// -flavored implementation; AdditiveHashFunction is a plain-addition double
// used by this module's own tests, where a trivially-verifiable hash rule
// makes the expected tree shape easy to check by hand.
package treehash

import (
	"fmt"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/trieindex"
)

// TreeHashFunction is the external collaborator the filled-tree stage
// consumes (the skeleton stages never hash). ComputeNodeHash is conceptually derivable from the leaf
// rule alone, but concrete implementations below still define it explicitly
// so a test double can swap in trivially-verifiable arithmetic for BOTH the
// leaf and the inner-node rule.
type TreeHashFunction interface {
	ComputeLeafHash(l node.Leaf) (felt.HashOutput, error)
	ComputeNodeHash(data node.NodeData) (felt.HashOutput, error)
}

// computeNodeHash is the shared Binary/Edge traversal every implementation
// below reuses, parameterized only by the two-input compression function.
func computeNodeHash(fn TreeHashFunction, compress func(a, b felt.Felt) felt.Felt, data node.NodeData) (felt.HashOutput, error) {
	switch d := data.(type) {
	case node.Binary:
		return felt.NewHashOutput(compress(d.LeftHash.Felt, d.RightHash.Felt)), nil
	case node.Edge:
		pathFelt, err := pathToFelt(d.PathToBottom)
		if err != nil {
			return felt.HashOutput{}, err
		}
		h := compress(d.BottomHash.Felt, pathFelt)
		return felt.NewHashOutput(h.AddUint64(uint64(d.PathToBottom.Length))), nil
	case node.LeafData:
		return fn.ComputeLeafHash(d.Leaf)
	default:
		return felt.HashOutput{}, fmt.Errorf("treehash: unknown NodeData variant %T", data)
	}
}

func pathToFelt(p trieindex.PathToBottom) (felt.Felt, error) {
	b := p.Path.Bytes32()
	return felt.FromBytesBE(b[:])
}
