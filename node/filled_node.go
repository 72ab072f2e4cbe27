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
	"fmt"

	"github.com/starkware-libs/committer-go/felt"
)

// FilledNode is a fully hashed post-state node: its hash and the payload
// that hashes to it.
type FilledNode struct {
	Hash felt.HashOutput
	Data NodeData
}

// innerNodeKeyPrefix is the storage-key prefix for Binary and Edge nodes.
// Leaf nodes use their Leaf's own StoragePrefix instead.
const innerNodeKeyPrefix = "patricia_node:"

// InnerNodeStorageKey returns the key a Binary or Edge node is persisted or
// looked up under. Exported so the original-skeleton engine can look up
// pre-state inner nodes without first materializing a FilledNode.
func InnerNodeStorageKey(hash felt.HashOutput) []byte {
	return append([]byte(innerNodeKeyPrefix), hash.ToBytesBE()...)
}

// StorageKey returns the opaque key this node is persisted under.
func (n FilledNode) StorageKey() []byte {
	switch data := n.Data.(type) {
	case Binary, Edge:
		return InnerNodeStorageKey(n.Hash)
	case LeafData:
		key := append([]byte(data.Leaf.StoragePrefix()), ':')
		return append(key, n.Hash.ToBytesBE()...)
	default:
		panic(fmt.Sprintf("node: unknown NodeData variant %T", n.Data))
	}
}

// StorageValue renders the node's on-disk payload.
func (n FilledNode) StorageValue() ([]byte, error) {
	switch data := n.Data.(type) {
	case Binary:
		out := make([]byte, 0, 2*felt.Bytes)
		out = append(out, data.LeftHash.ToBytesBE()...)
		out = append(out, data.RightHash.ToBytesBE()...)
		return out, nil
	case Edge:
		pathBytes := data.PathToBottom.Path.Bytes32()
		out := make([]byte, 0, 2*felt.Bytes+1)
		out = append(out, data.BottomHash.ToBytesBE()...)
		out = append(out, pathBytes[:]...)
		out = append(out, data.PathToBottom.Length)
		return out, nil
	case LeafData:
		return data.Leaf.Serialize()
	default:
		return nil, fmt.Errorf("node: unknown NodeData variant %T", n.Data)
	}
}
