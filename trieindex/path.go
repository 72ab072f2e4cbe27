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

package trieindex

import "github.com/holiman/uint256"

// PathToBottom is a compressed chain of length bits (0 <= length <= H) from
// a node down to a deeper "bottom" node, recorded as an Edge. path's value
// is always strictly less than 2^length.
type PathToBottom struct {
	Path   uint256.Int
	Length uint8
}

// LeftChild is the one-bit path to a node's left child.
var LeftChild = PathToBottom{Path: *uint256.NewInt(0), Length: 1}

// RightChild is the one-bit path to a node's right child.
var RightChild = PathToBottom{Path: *uint256.NewInt(1), Length: 1}

// BottomIndex returns the absolute index reached by following p from root:
// (root << length) | path.
func (p PathToBottom) BottomIndex(root NodeIndex) NodeIndex {
	var out uint256.Int
	out.Lsh(&root.v, uint(p.Length))
	out.Or(&out, &p.Path)
	return NodeIndex{v: out}
}

// Concat composes p followed by q: the path from p's root through q's
// bottom. Concatenation is associative and its length is the sum of the
// operand lengths.
func Concat(p, q PathToBottom) PathToBottom {
	var path uint256.Int
	path.Lsh(&p.Path, uint(q.Length))
	path.Or(&path, &q.Path)
	return PathToBottom{Path: path, Length: p.Length + q.Length}
}

// IsValid reports whether the PathToBottom satisfies the Edge invariant:
// 1 <= length <= H and path < 2^length.
func (p PathToBottom) IsValid(height uint8) bool {
	if p.Length < 1 || p.Length > height {
		return false
	}
	var bound uint256.Int
	bound.SetOne()
	bound.Lsh(&bound, uint(p.Length))
	return p.Path.Lt(&bound)
}

// Equal reports value equality.
func (p PathToBottom) Equal(other PathToBottom) bool {
	return p.Length == other.Length && p.Path.Eq(&other.Path)
}

// SplitFirstBit peels the most significant of p's length bits off: the
// direction (0=left, 1=right) of the first hop below whatever node p is
// relative to, and the PathToBottom of the remaining hops. Used by the
// updated-skeleton pass to walk an inherited Edge one level at a time when a
// modification's path diverges from it partway down.
func (p PathToBottom) SplitFirstBit() (bit uint8, rest PathToBottom) {
	shifted := p.Path
	shifted.Rsh(&shifted, uint(p.Length-1))
	if !shifted.IsZero() {
		bit = 1
	}
	var mask, restPath uint256.Int
	mask.SetOne()
	mask.Lsh(&mask, uint(p.Length-1))
	mask.SubUint64(&mask, 1)
	restPath.And(&p.Path, &mask)
	return bit, PathToBottom{Path: restPath, Length: p.Length - 1}
}
