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

// Command committer reads a block's pre-state and state diff as JSON,
// commits the resulting forest, and writes the two post-state root hashes
// back out as JSON.
//
// Usage:
//
//	committer [flags] <input.json> <output.json>
//
// Flags:
//
//	-v    Log trivial-modification warnings at info level (default: only a
//	      summary count is logged)
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/starkware-libs/committer-go/forest"
	"github.com/starkware-libs/committer-go/treehash"
)

func main() {
	verbose := flag.Bool("v", false, "log every trivial-modification warning individually")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: committer [flags] <input.json> <output.json>")
		os.Exit(1)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	if err := run(inputPath, outputPath, *verbose); err != nil {
		slog.Error("commit failed", "error", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string, verbose bool) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("committer: reading input: %w", err)
	}

	var w inputWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return fmt.Errorf("committer: parsing input: %w", err)
	}

	in, err := toForestInput(w)
	if err != nil {
		return err
	}

	out, err := forest.Commit(context.Background(), in, treehash.DefaultHashFunction{}, forest.Config{})
	if err != nil {
		return fmt.Errorf("committer: commit: %w", err)
	}

	in.Storage.MSet(out.Storage)

	if verbose {
		for _, w := range out.Warnings {
			slog.Info("trivial modification", "index", w.Index)
		}
	} else if len(out.Warnings) > 0 {
		slog.Info("trivial modifications found", "count", len(out.Warnings))
	}

	encoded, err := json.Marshal(toOutputWire(out))
	if err != nil {
		return fmt.Errorf("committer: encoding output: %w", err)
	}
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return fmt.Errorf("committer: writing output: %w", err)
	}

	slog.Info("successfully committed block",
		"contract_storage_root_hash", out.ContractsTrieRootHash.Hex(),
		"compiled_class_root_hash", out.ClassesTrieRootHash.Hex(),
	)
	return nil
}
