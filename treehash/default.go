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

// DefaultHashFunction is the production TreeHashFunction: Pedersen-flavored
// compression for Binary/Edge nodes (see ComputeNodeHash), the value itself
// for StorageValue leaves, Poseidon-flavored for CompiledClassHash leaves,
// nested-Pedersen for ContractState leaves.
//
// pedersenOf2/poseidonOf2 below are simplified two-input field compressions
// standing in for the production StarkNet Pedersen/Poseidon hashes, whose
// real constructions depend on fixed elliptic-curve point tables and
// permutation round constants that are domain-specific data this pack does
// not carry (the interface boundary TreeHashFunction is what's in scope, not
// a byte-exact reimplementation of those constants).
type DefaultHashFunction struct{}

// ComputeNodeHash implements TreeHashFunction's Binary/Edge rule with the
// Pedersen-flavored compression.
func (fn DefaultHashFunction) ComputeNodeHash(data node.NodeData) (felt.HashOutput, error) {
	return computeNodeHash(fn, pedersenOf2, data)
}

// ComputeLeafHash implements TreeHashFunction for the production leaf kinds.
func (DefaultHashFunction) ComputeLeafHash(l node.Leaf) (felt.HashOutput, error) {
	switch leaf := l.(type) {
	case node.StorageValueLeaf:
		return felt.NewHashOutput(leaf.Value.Felt), nil
	case node.CompiledClassHashLeaf:
		version := GetConfig().ContractClassLeafVersion
		return felt.NewHashOutput(poseidonOf2(version, leaf.Value.Felt)), nil
	case node.ContractStateLeaf:
		h := pedersenOf2(leaf.ClassHash.Felt, leaf.StorageRootHash.Felt)
		h = pedersenOf2(h, leaf.Nonce.Felt)
		h = pedersenOf2(h, felt.Zero)
		return felt.NewHashOutput(h), nil
	default:
		return felt.HashOutput{}, fmt.Errorf("treehash: unknown leaf kind %T", l)
	}
}

// pedersenOf2 compresses two field elements into one. The extra weight on a
// keeps it order-sensitive: pedersenOf2(a, b) - pedersenOf2(b, a) = a - b.
func pedersenOf2(a, b felt.Felt) felt.Felt {
	sum := a.Add(b)
	prod := a.Mul(b)
	return prod.Mul(sum).Add(a).Add(a).Add(b)
}

// poseidonOf2 compresses two field elements into one, with a different
// mixing schedule than pedersenOf2 so the two leaf families never collide
// trivially.
func poseidonOf2(a, b felt.Felt) felt.Felt {
	x := a.Add(b)
	y := a.Mul(a).Add(b.Mul(b))
	z := x.Mul(y)
	return z.Add(x).Sub(b)
}
