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

// Package felt implements the 252-bit STARK base field element used
// throughout the trie: keys, leaf values, and node hashes are all Felts.
package felt

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
)

// Felt is an element of the 252-bit STARK-curve base field, always held
// in its canonical reduced form.
type Felt struct {
	inner fr.Element
}

// Bytes is the fixed big-endian width of an encoded Felt.
const Bytes = fr.Bytes

var (
	// Zero is the additive identity.
	Zero Felt
	// One is the multiplicative identity.
	One Felt

	errOversizedInput = errors.New("felt: input longer than 32 bytes")
)

func init() {
	One.inner.SetOne()
}

// New returns the Felt representing v.
func New(v uint64) Felt {
	var f Felt
	f.inner.SetUint64(v)
	return f
}

// FromBytesBE decodes a big-endian byte slice into a Felt, reducing modulo
// the field order if necessary. Slices longer than 32 bytes are rejected.
func FromBytesBE(b []byte) (Felt, error) {
	if len(b) > Bytes {
		return Felt{}, errOversizedInput
	}
	var f Felt
	f.inner.SetBytes(b)
	return f, nil
}

// FromHex parses a "0x"-prefixed (or bare) hex string into a Felt.
func FromHex(s string) (Felt, error) {
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		s = "0"
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Felt{}, fmt.Errorf("felt: invalid hex %q: %w", s, err)
	}
	return FromBytesBE(raw)
}

// Bytes32 encodes the Felt as a fixed-width 32-byte big-endian array.
func (f Felt) Bytes32() [Bytes]byte {
	return f.inner.Bytes()
}

// ToBytesBE returns the fixed-width 32-byte big-endian encoding as a slice.
func (f Felt) ToBytesBE() []byte {
	b := f.inner.Bytes()
	return b[:]
}

// Hex renders the canonical "0x"-prefixed, zero-stripped hex form.
func (f Felt) Hex() string {
	if f.IsZero() {
		return "0x0"
	}
	b := f.ToBytesBE()
	return "0x" + strings.TrimLeft(hex.EncodeToString(b), "0")
}

func (f Felt) String() string {
	return f.Hex()
}

// IsZero reports whether f is the additive identity.
func (f Felt) IsZero() bool {
	return f.inner.IsZero()
}

// Equal reports whether f and other represent the same field element.
func (f Felt) Equal(other Felt) bool {
	return f.inner.Equal(&other.inner)
}

// Cmp gives the numeric ordering of the canonical representatives of f
// and other: -1, 0, or 1.
func (f Felt) Cmp(other Felt) int {
	return f.inner.Cmp(&other.inner)
}

// Add returns f + other in the field.
func (f Felt) Add(other Felt) Felt {
	var out Felt
	out.inner.Add(&f.inner, &other.inner)
	return out
}

// Sub returns f - other in the field.
func (f Felt) Sub(other Felt) Felt {
	var out Felt
	out.inner.Sub(&f.inner, &other.inner)
	return out
}

// Mul returns f * other in the field.
func (f Felt) Mul(other Felt) Felt {
	var out Felt
	out.inner.Mul(&f.inner, &other.inner)
	return out
}

// MarshalJSON renders f as a quoted "0x"-prefixed hex string, matching the
// wire encoding the rest of the ecosystem uses for field elements.
func (f Felt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Hex() + `"`), nil
}

// UnmarshalJSON parses a quoted "0x"-prefixed (or bare) hex string.
func (f *Felt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := FromHex(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// AddUint64 returns f + v, v treated as a small field element. Used for the
// Edge hash rule (hash(Edge) = Pedersen(bottom, path) + length).
func (f Felt) AddUint64(v uint64) Felt {
	var addend Felt
	addend.inner.SetUint64(v)
	return f.Add(addend)
}
