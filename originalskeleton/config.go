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

package originalskeleton

import (
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/trieindex"
)

// Config holds the original-skeleton engine's trivial-modification settings
// (spec §4.2): the CompareModifiedLeaves switch, the CompareLeaf predicate
// and the LookupPreviousLeaf hook. The contracts trie always leaves CompareModifiedLeaves false: a
// ContractState leaf is an expensive compound value to diff, so that trie's
// caller opts out. Storage and classes tries may opt in.
type Config struct {
	// CompareModifiedLeaves enables the "trivial modification" diagnostic:
	// when true and LookupPreviousLeaf/CompareLeaf are set, a modified leaf
	// whose new value the predicate judges indistinguishable from its
	// pre-state value is reported back as a TrivialModification warning.
	CompareModifiedLeaves bool

	// CompareLeaf judges whether a modified leaf at index is trivial given
	// its previously-stored value. Only consulted when CompareModifiedLeaves
	// is true.
	CompareLeaf func(index trieindex.NodeIndex, previous node.Leaf) bool

	// LookupPreviousLeaf fetches and deserializes the pre-state leaf at
	// index, if any. The original-skeleton engine itself never reads leaf
	// bytes; this hook exists solely so a caller that does know
	// the trie's leaf kind (and hence its storage prefix) can supply the
	// comparison data the diagnostic needs.
	LookupPreviousLeaf func(index trieindex.NodeIndex) (previous node.Leaf, found bool, err error)
}

// DefaultConfig opts out of the trivial-modification diagnostic, matching
// the contracts trie's default posture.
func DefaultConfig() Config {
	return Config{}
}

// TrivialModification is a non-fatal diagnostic: a modification whose new
// value CompareLeaf judged indistinguishable from the pre-state value.
type TrivialModification struct {
	Index trieindex.NodeIndex
}
