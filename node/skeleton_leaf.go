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

// SkeletonLeaf is a two-valued summary of a leaf modification used by the
// skeleton passes, which never need the concrete leaf value.
type SkeletonLeaf uint8

const (
	// SkeletonLeafZero marks a deletion.
	SkeletonLeafZero SkeletonLeaf = iota
	// SkeletonLeafNonZero marks a write or update.
	SkeletonLeafNonZero
)

// IsZero reports whether the modification is a deletion.
func (s SkeletonLeaf) IsZero() bool {
	return s == SkeletonLeafZero
}

// SkeletonLeafFor summarizes a concrete leaf modification as a
// SkeletonLeaf, for leaf kinds whose emptiness determines the summary.
func SkeletonLeafFor(l Leaf) SkeletonLeaf {
	if l.IsEmpty() {
		return SkeletonLeafZero
	}
	return SkeletonLeafNonZero
}

func (s SkeletonLeaf) String() string {
	if s.IsZero() {
		return "Zero"
	}
	return "NonZero"
}

// EdgeData pairs a sibling Edge's bottom hash with its path, the payload an
// EdgeSibling node retains.
type EdgeData struct {
	BottomHash   felt.HashOutput
	PathToBottom trieindex.PathToBottom
}
