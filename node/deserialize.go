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

	"github.com/holiman/uint256"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/trieindex"
)

// ErrMalformedNode reports a stored inner-node payload that doesn't match
// either of the two recognized shapes.
var ErrMalformedNode = fmt.Errorf("node: malformed stored inner node")

// DeserializeInnerNode decodes a stored Binary or Edge payload (the node's
// encoding, sans its own hash) back into its NodeData. Leaf payloads are
// never read this way: the original-skeleton pass synthesizes leaf
// placeholders without touching storage.
func DeserializeInnerNode(raw []byte) (NodeData, error) {
	switch len(raw) {
	case 2 * felt.Bytes:
		left, err := felt.FromBytesBE(raw[:felt.Bytes])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedNode, err)
		}
		right, err := felt.FromBytesBE(raw[felt.Bytes:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedNode, err)
		}
		return Binary{LeftHash: felt.NewHashOutput(left), RightHash: felt.NewHashOutput(right)}, nil
	case 2*felt.Bytes + 1:
		bottom, err := felt.FromBytesBE(raw[:felt.Bytes])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedNode, err)
		}
		var path uint256.Int
		path.SetBytes(raw[felt.Bytes : 2*felt.Bytes])
		length := raw[2*felt.Bytes]
		ptb := trieindex.PathToBottom{Path: path, Length: length}
		return Edge{BottomHash: felt.NewHashOutput(bottom), PathToBottom: ptb}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected length %d", ErrMalformedNode, len(raw))
	}
}
