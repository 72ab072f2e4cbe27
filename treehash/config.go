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

package treehash

import (
	"sync"

	"github.com/starkware-libs/committer-go/felt"
)

// Config holds the domain-separation constants the default hash function
// mixes into leaf hashes. Lazily built once, the way config_ipa.go's
// GetConfig builds its *Config on first use.
type Config struct {
	// ContractClassLeafVersion is the version tag mixed into every
	// CompiledClassHash leaf hash.
	ContractClassLeafVersion felt.Felt
}

var (
	configOnce sync.Once
	config     *Config
)

// GetConfig returns the package's lazily-initialized Config.
func GetConfig() *Config {
	configOnce.Do(func() {
		config = &Config{
			ContractClassLeafVersion: asciiFelt("CONTRACT_CLASS_LEAF_V0"),
		}
	})
	return config
}

// asciiFelt interprets s as the big-endian digits of a field element, right
// aligned in a 32-byte buffer, matching how original_source's version tags
// are embedded as felts.
func asciiFelt(s string) felt.Felt {
	var buf [felt.Bytes]byte
	copy(buf[felt.Bytes-len(s):], s)
	f, err := felt.FromBytesBE(buf[:])
	if err != nil {
		// s is a fixed, short ASCII literal chosen to fit the field; a
		// failure here means the constant itself is wrong.
		panic(err)
	}
	return f
}
