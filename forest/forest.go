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

// Package forest is the orchestrator: the module's single public entry
// point. Commit takes one state diff against one pre-state forest and
// drives the three lower engines (originalskeleton, updatedskeleton,
// filledtree) once per accessed contract's storage trie, once for the
// classes trie, and once for the contracts trie whose leaves are derived
// from the storage tries' own results.
package forest

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/starkware-libs/committer-go/felt"
	"github.com/starkware-libs/committer-go/filledtree"
	"github.com/starkware-libs/committer-go/node"
	"github.com/starkware-libs/committer-go/originalskeleton"
	"github.com/starkware-libs/committer-go/storage"
	"github.com/starkware-libs/committer-go/treehash"
	"github.com/starkware-libs/committer-go/trieindex"
	"github.com/starkware-libs/committer-go/updatedskeleton"
)

// StateDiff is one block's worth of changes against the pre-state forest.
// An address is "accessed" when it has an entry in AddressToClassHash,
// AddressToNonce, or StorageUpdates.
type StateDiff struct {
	AddressToClassHash           map[felt.ContractAddress]felt.ClassHash
	AddressToNonce               map[felt.ContractAddress]felt.Nonce
	ClassHashToCompiledClassHash map[felt.ClassHash]felt.CompiledClassHash
	CurrentContractStateLeaves   map[felt.ContractAddress]node.ContractStateLeaf
	StorageUpdates               map[felt.ContractAddress]map[felt.StorageKey]felt.StorageValue
}

// Input is everything Commit needs: the pre-state backing store, the diff
// to apply, the uniform height every trie in the forest is built at, and
// the two pre-state root hashes the diff is applied against.
type Input struct {
	Storage               storage.Storage
	Diff                  StateDiff
	TreeHeight            uint8
	ContractsTrieRootHash felt.HashOutput
	ClassesTrieRootHash   felt.HashOutput
}

// Output is Commit's result: the two post-state root hashes, every newly
// written node across every trie the commit touched (ready for a single
// Storage.MSet call), and any trivial-modification diagnostics the
// original-skeleton engines reported along the way.
type Output struct {
	ContractsTrieRootHash felt.HashOutput
	ClassesTrieRootHash   felt.HashOutput
	Storage               map[string][]byte
	Warnings              []originalskeleton.TrivialModification
}

// Config holds the per-trie original-skeleton diagnostics knobs. The
// contracts trie itself never takes one: its leaves are compound
// ContractState values, too expensive to diff, so Commit always builds it
// with originalskeleton.DefaultConfig().
type Config struct {
	StorageTrieConfig originalskeleton.Config
	ClassesTrieConfig originalskeleton.Config
}

// perAddressResult is one accessed address's storage-trie pipeline output,
// folded into the contracts trie's leaf modifications once every address
// has finished.
type perAddressResult struct {
	address  felt.ContractAddress
	leaf     node.ContractStateLeaf
	nodes    map[string][]byte
	warnings []originalskeleton.TrivialModification
}

// Commit computes the post-state forest for diff against the pre-state
// roots in in, hashing with hashFn. Every accessed address's storage
// trie and the classes trie build concurrently; the contracts trie, whose
// leaves depend on the storage tries' new roots, builds once those finish.
func Commit(ctx context.Context, in Input, hashFn treehash.TreeHashFunction, cfg Config) (*Output, error) {
	addresses := accessedAddresses(in.Diff)

	g, gctx := errgroup.WithContext(ctx)

	storageResults := make([]perAddressResult, len(addresses))
	for i, addr := range addresses {
		i, addr := i, addr
		g.Go(func() error {
			result, err := commitStorageTrie(gctx, in, addr, hashFn, cfg.StorageTrieConfig)
			if err != nil {
				return err
			}
			storageResults[i] = result
			return nil
		})
	}

	var classesRoot felt.HashOutput
	var classesNodes map[string][]byte
	var classesWarnings []originalskeleton.TrivialModification
	g.Go(func() error {
		root, nodes, warnings, err := commitClassesTrie(gctx, in, hashFn, cfg.ClassesTrieConfig)
		if err != nil {
			return err
		}
		classesRoot, classesNodes, classesWarnings = root, nodes, warnings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	contractsRoot, contractsNodes, contractsWarnings, err := commitContractsTrie(ctx, in, storageResults, hashFn)
	if err != nil {
		return nil, err
	}

	aggregated := make(map[string][]byte, len(classesNodes)+len(contractsNodes))
	mergeInto(aggregated, classesNodes)
	mergeInto(aggregated, contractsNodes)
	warnings := append([]originalskeleton.TrivialModification{}, classesWarnings...)
	warnings = append(warnings, contractsWarnings...)
	for _, r := range storageResults {
		mergeInto(aggregated, r.nodes)
		warnings = append(warnings, r.warnings...)
	}

	return &Output{
		ContractsTrieRootHash: contractsRoot,
		ClassesTrieRootHash:   classesRoot,
		Warnings:              warnings,
		Storage:               aggregated,
	}, nil
}

// accessedAddresses is the sorted union of every address the diff
// mentions: the keys of AddressToClassHash, AddressToNonce, and
// StorageUpdates. An address whose only change is a nonce or class-hash
// update, with no storage_updates entry at all, is still accessed and
// still gets a full storage-trie pipeline run with zero modifications: see
// the Open Question decision in DESIGN.md.
func accessedAddresses(diff StateDiff) []felt.ContractAddress {
	seen := make(map[felt.ContractAddress]struct{})
	for addr := range diff.AddressToClassHash {
		seen[addr] = struct{}{}
	}
	for addr := range diff.AddressToNonce {
		seen[addr] = struct{}{}
	}
	for addr := range diff.StorageUpdates {
		seen[addr] = struct{}{}
	}
	out := make([]felt.ContractAddress, 0, len(seen))
	for addr := range seen {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j].Felt) < 0 })
	return out
}

// commitStorageTrie runs the three-stage pipeline for one accessed
// contract's storage trie and folds the result into the post-state
// ContractState leaf the contracts trie will need.
func commitStorageTrie(ctx context.Context, in Input, addr felt.ContractAddress, hashFn treehash.TreeHashFunction, cfg originalskeleton.Config) (perAddressResult, error) {
	prior, ok := in.Diff.CurrentContractStateLeaves[addr]
	if !ok {
		return perAddressResult{}, fmt.Errorf("%w: address %s", errMissingContractCurrentState, addr.Hex())
	}

	updates := in.Diff.StorageUpdates[addr]
	skeletonMods := make(map[trieindex.NodeIndex]node.SkeletonLeaf, len(updates))
	leafMods := make(map[trieindex.NodeIndex]node.Leaf, len(updates))
	sortedIndices := make([]trieindex.NodeIndex, 0, len(updates))
	for key, value := range updates {
		idx := trieindex.FromLeafFelt(key.Felt, in.TreeHeight)
		sortedIndices = append(sortedIndices, idx)
		leaf := node.StorageValueLeaf{Value: value}
		skeletonMods[idx] = node.SkeletonLeafFor(leaf)
		leafMods[idx] = leaf
	}
	sort.Slice(sortedIndices, func(i, j int) bool { return sortedIndices[i].Less(sortedIndices[j]) })

	original, warnings, err := originalskeleton.CreateTree(in.Storage, sortedIndices, prior.StorageRootHash, in.TreeHeight, cfg)
	if err != nil {
		return perAddressResult{}, fmt.Errorf("forest: storage trie for address %s: %w", addr.Hex(), err)
	}
	updated := updatedskeleton.Create(original, skeletonMods)
	filled, err := filledtree.Create(ctx, updated, leafMods, hashFn)
	if err != nil {
		return perAddressResult{}, fmt.Errorf("forest: storage trie for address %s: %w", addr.Hex(), err)
	}
	nodes, err := filled.Serialize()
	if err != nil {
		return perAddressResult{}, fmt.Errorf("forest: storage trie for address %s: %w", addr.Hex(), err)
	}

	newLeaf := node.ContractStateLeaf{
		Nonce:           prior.Nonce,
		ClassHash:       prior.ClassHash,
		StorageRootHash: filled.GetRootHash(),
	}
	if nonce, ok := in.Diff.AddressToNonce[addr]; ok {
		newLeaf.Nonce = nonce
	}
	if classHash, ok := in.Diff.AddressToClassHash[addr]; ok {
		newLeaf.ClassHash = classHash
	}

	return perAddressResult{address: addr, leaf: newLeaf, nodes: nodes, warnings: warnings}, nil
}

// commitClassesTrie builds the classes trie from ClassHashToCompiledClassHash.
func commitClassesTrie(ctx context.Context, in Input, hashFn treehash.TreeHashFunction, cfg originalskeleton.Config) (felt.HashOutput, map[string][]byte, []originalskeleton.TrivialModification, error) {
	skeletonMods := make(map[trieindex.NodeIndex]node.SkeletonLeaf, len(in.Diff.ClassHashToCompiledClassHash))
	leafMods := make(map[trieindex.NodeIndex]node.Leaf, len(in.Diff.ClassHashToCompiledClassHash))
	sortedIndices := make([]trieindex.NodeIndex, 0, len(in.Diff.ClassHashToCompiledClassHash))
	for classHash, compiledHash := range in.Diff.ClassHashToCompiledClassHash {
		idx := trieindex.FromLeafFelt(classHash.Felt, in.TreeHeight)
		sortedIndices = append(sortedIndices, idx)
		leaf := node.CompiledClassHashLeaf{Value: compiledHash}
		skeletonMods[idx] = node.SkeletonLeafFor(leaf)
		leafMods[idx] = leaf
	}
	sort.Slice(sortedIndices, func(i, j int) bool { return sortedIndices[i].Less(sortedIndices[j]) })

	original, warnings, err := originalskeleton.CreateTree(in.Storage, sortedIndices, in.ClassesTrieRootHash, in.TreeHeight, cfg)
	if err != nil {
		return felt.HashOutput{}, nil, nil, fmt.Errorf("forest: classes trie: %w", err)
	}
	updated := updatedskeleton.Create(original, skeletonMods)
	filled, err := filledtree.Create(ctx, updated, leafMods, hashFn)
	if err != nil {
		return felt.HashOutput{}, nil, nil, fmt.Errorf("forest: classes trie: %w", err)
	}
	nodes, err := filled.Serialize()
	if err != nil {
		return felt.HashOutput{}, nil, nil, fmt.Errorf("forest: classes trie: %w", err)
	}
	return filled.GetRootHash(), nodes, warnings, nil
}

// commitContractsTrie builds the contracts trie whose leaves are the
// post-state ContractState values produced by the per-address storage
// pipelines: the contracts trie never opts into the trivial-modification
// diagnostic, since a compound ContractState value is too expensive to
// diff leaf by leaf.
func commitContractsTrie(ctx context.Context, in Input, results []perAddressResult, hashFn treehash.TreeHashFunction) (felt.HashOutput, map[string][]byte, []originalskeleton.TrivialModification, error) {
	skeletonMods := make(map[trieindex.NodeIndex]node.SkeletonLeaf, len(results))
	leafMods := make(map[trieindex.NodeIndex]node.Leaf, len(results))
	sortedIndices := make([]trieindex.NodeIndex, 0, len(results))
	for _, r := range results {
		idx := trieindex.FromLeafFelt(r.address.Felt, in.TreeHeight)
		sortedIndices = append(sortedIndices, idx)
		skeletonMods[idx] = node.SkeletonLeafFor(r.leaf)
		leafMods[idx] = r.leaf
	}
	sort.Slice(sortedIndices, func(i, j int) bool { return sortedIndices[i].Less(sortedIndices[j]) })

	// DefaultConfig leaves CompareModifiedLeaves false, so this trie never
	// produces trivial-modification warnings.
	original, _, err := originalskeleton.CreateTree(in.Storage, sortedIndices, in.ContractsTrieRootHash, in.TreeHeight, originalskeleton.DefaultConfig())
	if err != nil {
		return felt.HashOutput{}, nil, nil, fmt.Errorf("forest: contracts trie: %w", err)
	}
	updated := updatedskeleton.Create(original, skeletonMods)
	filled, err := filledtree.Create(ctx, updated, leafMods, hashFn)
	if err != nil {
		return felt.HashOutput{}, nil, nil, fmt.Errorf("forest: contracts trie: %w", err)
	}
	nodes, err := filled.Serialize()
	if err != nil {
		return felt.HashOutput{}, nil, nil, fmt.Errorf("forest: contracts trie: %w", err)
	}
	return filled.GetRootHash(), nodes, nil, nil
}

func mergeInto(dst, src map[string][]byte) {
	for k, v := range src {
		dst[k] = v
	}
}
