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

package treehash

import (
	"fmt"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/node"
)

// AdditiveHashFunction is a TreeHashFunction whose hash is plain field
// addition, so expected hashes in a test can be computed by hand instead of
// reimplementing Pedersen/Poseidon. Used only by this module's own _test.go
// files, never by forest.Commit's default wiring.
type AdditiveHashFunction struct{}

// ComputeNodeHash sums the two inputs (plus the edge length, for an Edge)
// instead of compressing them cryptographically.
func (fn AdditiveHashFunction) ComputeNodeHash(data node.NodeData) (felt.HashOutput, error) {
	return computeNodeHash(fn, func(a, b felt.Felt) felt.Felt { return a.Add(b) }, data)
}

// ComputeLeafHash returns the leaf's underlying value(s) summed together.
func (AdditiveHashFunction) ComputeLeafHash(l node.Leaf) (felt.HashOutput, error) {
	switch leaf := l.(type) {
	case node.StorageValueLeaf:
		return felt.NewHashOutput(leaf.Value.Felt), nil
	case node.CompiledClassHashLeaf:
		return felt.NewHashOutput(leaf.Value.Felt), nil
	case node.ContractStateLeaf:
		sum := leaf.ClassHash.Felt.Add(leaf.Nonce.Felt).Add(leaf.StorageRootHash.Felt)
		return felt.NewHashOutput(sum), nil
	default:
		return felt.HashOutput{}, fmt.Errorf("treehash: unknown leaf kind %T", l)
	}
}
