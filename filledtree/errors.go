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

package filledtree

import "errors"

var (
	// errMissingNode is returned when the updated skeleton has no entry for
	// an index the recursive hash walk needs to visit.
	errMissingNode = errors.New("filledtree: updated skeleton is missing a node")

	// errReadModifications is returned when a Leaf marker has no
	// corresponding entry in the caller-supplied leaf modifications map.
	errReadModifications = errors.New("filledtree: no leaf modification supplied for index")

	// errInconsistentModification is returned when a Leaf marker's concrete
	// value turns out to be empty: the updated-skeleton pass only ever
	// records a Leaf marker for a non-zero modification, so an empty value
	// here means the two stages disagree about the same index.
	errInconsistentModification = errors.New("filledtree: leaf modification is empty but skeleton marks it written")

	// errDoubleWrite is returned if a slot is written twice: every index is
	// reached by exactly one caller in a well-formed skeleton, so this
	// indicates a structural invariant violation.
	errDoubleWrite = errors.New("filledtree: slot written more than once")

	// errMissingRoot is returned when the recursion completes without the
	// root slot being populated.
	errMissingRoot = errors.New("filledtree: no root node produced")
)
