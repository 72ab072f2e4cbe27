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

// Package trieindex implements the 1-based node-index algebra of a sparse
// Patricia-Merkle trie of height H: bit length, child derivation, least
// common ancestor, path-to-descendant, and the sorted-leaf bisection used
// to split a batch of modifications across a subtree's two children.
package trieindex

import (
	"github.com/holiman/uint256"

	"github.com/starkware-libs/committer-go/felt"
)

// MaxHeight is the largest tree height the index algebra supports; a Felt
// key embeds directly into a leaf at this height (see FromLeafFelt).
const MaxHeight = 251

// NodeIndex is an unsigned integer in [1, 2^(H+1)) addressing a node of a
// trie of height H. Index 1 is always the root.
type NodeIndex struct {
	v uint256.Int
}

// Root is the index of the trie root, independent of height.
var Root = NodeIndex{v: *uint256.NewInt(1)}

// FromUint64 builds a NodeIndex from a small integer, mostly for tests.
func FromUint64(v uint64) NodeIndex {
	return NodeIndex{v: *uint256.NewInt(v)}
}

// FromUint256 wraps an already-computed uint256 value.
func FromUint256(v *uint256.Int) NodeIndex {
	return NodeIndex{v: *v}
}

// FirstLeaf returns 1<<H, the index of the leftmost leaf of a height-H trie.
func FirstLeaf(height uint8) NodeIndex {
	var n NodeIndex
	n.v.SetOne()
	n.v.Lsh(&n.v, uint(height))
	return n
}

// MaxIndex returns (1<<(H+1))-1, the largest valid index of a height-H trie.
func MaxIndex(height uint8) NodeIndex {
	var n NodeIndex
	n.v.SetOne()
	n.v.Lsh(&n.v, uint(height)+1)
	n.v.SubUint64(&n.v, 1)
	return n
}

// FromLeafFelt embeds a 252-bit key into a leaf index of a height-H trie:
// FIRST_LEAF + f.
func FromLeafFelt(f felt.Felt, height uint8) NodeIndex {
	b := f.Bytes32()
	var fv uint256.Int
	fv.SetBytes(b[:])
	out := FirstLeaf(height)
	out.v.Add(&out.v, &fv)
	return out
}

// Uint256 exposes the underlying 256-bit value, read-only by convention.
func (n NodeIndex) Uint256() uint256.Int {
	return n.v
}

// Uint256Ptr returns a pointer to a copy of the underlying 256-bit value,
// for callers (mostly tests) that need to feed it to the uint256 API.
func (n NodeIndex) Uint256Ptr() *uint256.Int {
	v := n.v
	return &v
}

// String renders n in decimal, for error messages and test failures.
func (n NodeIndex) String() string {
	return n.v.Dec()
}

// IsZero reports whether n is the zero index (never a valid trie index).
func (n NodeIndex) IsZero() bool {
	return n.v.IsZero()
}

// Equal reports value equality.
func (n NodeIndex) Equal(other NodeIndex) bool {
	return n.v.Eq(&other.v)
}

// Cmp gives the numeric ordering of n and other.
func (n NodeIndex) Cmp(other NodeIndex) int {
	return n.v.Cmp(&other.v)
}

// Less reports whether n sorts before other; satisfies sort.Interface-style
// comparators used by the bisection helpers below.
func (n NodeIndex) Less(other NodeIndex) bool {
	return n.Cmp(other) < 0
}

// BitLength returns the 1-based position of n's most significant bit. A
// leaf of a height-H trie always has BitLength() == H+1.
func (n NodeIndex) BitLength() int {
	return n.v.BitLen()
}

// IsLeaf reports whether n addresses a leaf of a height-H trie.
func (n NodeIndex) IsLeaf(height uint8) bool {
	return n.BitLength() == int(height)+1
}

// ShiftLeft returns n<<k.
func (n NodeIndex) ShiftLeft(k uint) NodeIndex {
	var out NodeIndex
	out.v.Lsh(&n.v, k)
	return out
}

// ShiftRight returns n>>k.
func (n NodeIndex) ShiftRight(k uint) NodeIndex {
	var out NodeIndex
	out.v.Rsh(&n.v, k)
	return out
}

// Children returns (2n, 2n+1).
func (n NodeIndex) Children() (left, right NodeIndex) {
	left = n.ShiftLeft(1)
	right.v.AddUint64(&left.v, 1)
	return left, right
}

// LCA returns the common prefix of a and b, viewed as bit strings aligned
// from the most significant bit. Panics if either index is zero: zero is
// never a valid trie index, so this is a programmer error.
func LCA(a, b NodeIndex) NodeIndex {
	if a.IsZero() || b.IsZero() {
		panic("trieindex: lca of a zero index is undefined")
	}
	la, lb := a.BitLength(), b.BitLength()
	// Align both operands to the shallower bit length by dropping the
	// extra low-order bits (they're below the shallower node's depth).
	x, y := a.v, b.v
	if la > lb {
		x.Rsh(&x, uint(la-lb))
	} else if lb > la {
		y.Rsh(&y, uint(lb-la))
	}
	// Repeatedly drop the low bit from both sides until they match; what
	// remains is the shared root-to-node prefix, still carrying its
	// leading 1 bit so it is a valid NodeIndex on its own.
	for !x.Eq(&y) {
		x.Rsh(&x, 1)
		y.Rsh(&y, 1)
	}
	return NodeIndex{v: x}
}

// GetPathToDescendant returns the PathToBottom of the bits of d below n:
// length = BitLength(d) - BitLength(n), path = d mod 2^length.
func (n NodeIndex) GetPathToDescendant(d NodeIndex) PathToBottom {
	length := d.BitLength() - n.BitLength()
	if length < 0 {
		panic("trieindex: descendant is shallower than ancestor")
	}
	var mask, path uint256.Int
	mask.SetOne()
	mask.Lsh(&mask, uint(length))
	mask.SubUint64(&mask, 1)
	path.And(&d.v, &mask)
	return PathToBottom{Path: path, Length: uint8(length)}
}

// midpoint returns the index that splits root's leaf range in half:
// (2*root+1) << (H - bit_length(root)).
func midpoint(root NodeIndex, height uint8) NodeIndex {
	var m uint256.Int
	m.Lsh(&root.v, 1)
	m.AddUint64(&m, 1)
	m.Lsh(&m, uint(int(height)-root.BitLength()))
	return NodeIndex{v: m}
}

// SplitLeaves bisects sortedLeafIndices, a sorted slice of descendants of
// root, about root's midpoint. Every element of the left slice is strictly
// less than the midpoint; every element of the right slice is not.
//
// Precondition (not checked, a programmer error if violated): every index
// in sortedLeafIndices is a leaf descendant of root, and the slice is sorted
// ascending.
func SplitLeaves(root NodeIndex, sortedLeafIndices []NodeIndex, height uint8) (left, right []NodeIndex) {
	mid := midpoint(root, height)
	lo, hi := 0, len(sortedLeafIndices)
	for lo < hi {
		mid2 := (lo + hi) / 2
		if sortedLeafIndices[mid2].Less(mid) {
			lo = mid2 + 1
		} else {
			hi = mid2
		}
	}
	return sortedLeafIndices[:lo], sortedLeafIndices[lo:]
}

// HasLeavesOnBothSides reports whether splitting leaves about root yields a
// non-empty slice on each side.
func HasLeavesOnBothSides(root NodeIndex, sortedLeafIndices []NodeIndex, height uint8) bool {
	left, right := SplitLeaves(root, sortedLeafIndices, height)
	return len(left) > 0 && len(right) > 0
}

// SubtreeHeight returns how many levels separate idx from the leaves of a
// height-H trie (0 when idx itself addresses a leaf).
func SubtreeHeight(idx NodeIndex, height uint8) uint8 {
	return height - uint8(idx.BitLength()-1)
}

// LeafRange returns the first and last leaf index reachable under idx in a
// height-H trie (inclusive on both ends). Used by the original-skeleton
// engine to bisect modification indices down an Edge's bottom.
func LeafRange(idx NodeIndex, height uint8) (first, last NodeIndex) {
	remaining := uint(int(height) - (idx.BitLength() - 1))
	first = idx.ShiftLeft(remaining)
	var mask, lastV uint256.Int
	mask.SetOne()
	mask.Lsh(&mask, remaining)
	mask.SubUint64(&mask, 1)
	lastV.Or(&first.v, &mask)
	return first, NodeIndex{v: lastV}
}

// BisectRange returns the subslice of sortedLeafIndices that falls within
// [lo, hi] inclusive.
func BisectRange(sortedLeafIndices []NodeIndex, lo, hi NodeIndex) []NodeIndex {
	start := 0
	for start < len(sortedLeafIndices) && sortedLeafIndices[start].Less(lo) {
		start++
	}
	end := start
	for end < len(sortedLeafIndices) && !hi.Less(sortedLeafIndices[end]) {
		end++
	}
	return sortedLeafIndices[start:end]
}
