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
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/trieindex"
)

func TestInnerNodeRoundTrip(t *testing.T) {
	t.Parallel()

	bin := Binary{
		LeftHash:  felt.NewHashOutput(felt.New(7)),
		RightHash: felt.NewHashOutput(felt.New(9)),
	}
	fn := FilledNode{Hash: felt.NewHashOutput(felt.New(16)), Data: bin}
	raw, err := fn.StorageValue()
	if err != nil {
		t.Fatalf("StorageValue: %v", err)
	}
	got, err := DeserializeInnerNode(raw)
	if err != nil {
		t.Fatalf("DeserializeInnerNode: %v", err)
	}
	if gotBin, ok := got.(Binary); !ok || !gotBin.LeftHash.Equal(bin.LeftHash.Felt) || !gotBin.RightHash.Equal(bin.RightHash.Felt) {
		t.Fatalf("round trip mismatch: got %s, want %s", spew.Sdump(got), spew.Sdump(bin))
	}

	edge := Edge{
		BottomHash:   felt.NewHashOutput(felt.New(42)),
		PathToBottom: trieindex.PathToBottom{Path: *trieindex.FromUint64(5).Uint256Ptr(), Length: 3},
	}
	fn = FilledNode{Hash: felt.NewHashOutput(felt.New(100)), Data: edge}
	raw, err = fn.StorageValue()
	if err != nil {
		t.Fatalf("StorageValue: %v", err)
	}
	got, err = DeserializeInnerNode(raw)
	if err != nil {
		t.Fatalf("DeserializeInnerNode: %v", err)
	}
	gotEdge, ok := got.(Edge)
	if !ok || !gotEdge.BottomHash.Equal(edge.BottomHash.Felt) || !gotEdge.PathToBottom.Equal(edge.PathToBottom) {
		t.Fatalf("round trip mismatch: got %s, want %s", spew.Sdump(got), spew.Sdump(edge))
	}
}

func TestLeafRoundTrip(t *testing.T) {
	t.Parallel()

	sv := StorageValueLeaf{Value: felt.StorageValue{Felt: felt.New(123)}}
	raw, err := sv.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := DeserializeStorageValueLeaf(raw)
	if err != nil || !got.Value.Equal(sv.Value.Felt) {
		t.Fatalf("round trip mismatch: got %+v, err %v", got, err)
	}

	cch := CompiledClassHashLeaf{Value: felt.CompiledClassHash{Felt: felt.New(456)}}
	raw, err = cch.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	gotCCH, err := DeserializeCompiledClassHashLeaf(raw)
	if err != nil || !gotCCH.Value.Equal(cch.Value.Felt) {
		t.Fatalf("round trip mismatch: got %+v, err %v", gotCCH, err)
	}

	cs := ContractStateLeaf{
		Nonce:           felt.Nonce{Felt: felt.New(1)},
		ClassHash:       felt.ClassHash{Felt: felt.New(2)},
		StorageRootHash: felt.NewHashOutput(felt.New(3)),
	}
	raw, err = cs.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	gotCS, err := DeserializeContractStateLeaf(raw)
	if err != nil {
		t.Fatalf("DeserializeContractStateLeaf: %v", err)
	}
	if !gotCS.Nonce.Equal(cs.Nonce.Felt) || !gotCS.ClassHash.Equal(cs.ClassHash.Felt) || !gotCS.StorageRootHash.Equal(cs.StorageRootHash.Felt) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", gotCS, cs)
	}
}

func TestSkeletonLeafIsZero(t *testing.T) {
	t.Parallel()

	if !SkeletonLeafZero.IsZero() {
		t.Fatal("SkeletonLeafZero.IsZero() = false")
	}
	if SkeletonLeafNonZero.IsZero() {
		t.Fatal("SkeletonLeafNonZero.IsZero() = true")
	}
	if SkeletonLeafFor(StorageValueLeaf{Value: felt.StorageValue{Felt: felt.Zero}}) != SkeletonLeafZero {
		t.Fatal("SkeletonLeafFor(empty leaf) != Zero")
	}
	if SkeletonLeafFor(StorageValueLeaf{Value: felt.StorageValue{Felt: felt.New(1)}}) != SkeletonLeafNonZero {
		t.Fatal("SkeletonLeafFor(non-empty leaf) != NonZero")
	}
}
