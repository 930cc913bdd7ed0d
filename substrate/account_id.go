// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package substrate

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"
)

const (
	// AccountIDLength length of account ID in bytes.
	AccountIDLength = 32
	// DefaultSS58Prefix is the generic substrate address prefix.
	DefaultSS58Prefix byte = 42

	ss58ChecksumLength = 2
	ss58PayloadLength  = 1 + AccountIDLength + ss58ChecksumLength
)

var ss58Context = []byte("SS58PRE")

// AccountID is the 32-byte public key shaped identifier of an account.
// Any 32 bytes are accepted.
type AccountID [AccountIDLength]byte

var (
	_ json.Marshaler             = (*AccountID)(nil)
	_ json.Unmarshaler           = (*AccountID)(nil)
	_ encoding.TextMarshaler     = AccountID{}
	_ encoding.TextUnmarshaler   = (*AccountID)(nil)
	_ encoding.BinaryMarshaler   = AccountID{}
	_ encoding.BinaryUnmarshaler = (*AccountID)(nil)
)

// String returns the SS58 text form using DefaultSS58Prefix.
func (a AccountID) String() string {
	return a.EncodeWithPrefix(DefaultSS58Prefix)
}

// EncodeWithPrefix returns the SS58 text form using the given prefix byte.
func (a AccountID) EncodeWithPrefix(prefix byte) string {
	var buf [ss58PayloadLength]byte
	buf[0] = prefix
	copy(buf[1:], a[:])

	sum := ss58Checksum(buf[:1+AccountIDLength])
	copy(buf[1+AccountIDLength:], sum[:ss58ChecksumLength])
	return base58.Encode(buf[:])
}

// AbbrevString returns abbrev string presentation.
func (a AccountID) AbbrevString() string {
	s := a.String()
	return s[:6] + "…" + s[len(s)-6:]
}

// Hex returns the 0x prefixed hex form of the raw bytes.
func (a AccountID) Hex() string {
	return hexutil.Encode(a[:])
}

// Bytes returns byte slice form of AccountID.
func (a AccountID) Bytes() []byte {
	return a[:]
}

// IsZero returns if AccountID has all zero bytes.
func (a AccountID) IsZero() bool {
	return a == AccountID{}
}

// Compare orders account IDs by their raw bytes.
func (a AccountID) Compare(other AccountID) int {
	return bytes.Compare(a[:], other[:])
}

// MarshalText implements encoding.TextMarshaler.
func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AccountID) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a *AccountID) MarshalJSON() ([]byte, error) {
	if a == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AccountID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalBinary implements encoding.BinaryMarshaler.
// The output is the SCALE encoding of the account, which is the raw bytes.
func (a AccountID) MarshalBinary() ([]byte, error) {
	return bytes.Clone(a[:]), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *AccountID) UnmarshalBinary(data []byte) error {
	if len(data) != AccountIDLength {
		return fmt.Errorf("account ID must be %d bytes, got %d", AccountIDLength, len(data))
	}
	copy(a[:], data)
	return nil
}

// ParseAccountID decodes SS58 text into AccountID.
// The returned error is always a *BadAccountIDError.
//
// The prefix byte is covered by the checksum but not compared with
// DefaultSS58Prefix, so IDs encoded for other networks are accepted.
func ParseAccountID(s string) (AccountID, error) {
	a, _, err := DecodeAccountID(s)
	return a, err
}

// MustParseAccountID decodes SS58 text into AccountID, panic on error.
func MustParseAccountID(s string) AccountID {
	a, err := ParseAccountID(s)
	if err != nil {
		panic(err)
	}
	return a
}

// DecodeAccountID decodes SS58 text, returning the account and the prefix byte it was encoded with.
func DecodeAccountID(s string) (AccountID, byte, error) {
	// empty text is valid base58 for zero bytes
	if s == "" {
		return AccountID{}, 0, newLengthError(0)
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return AccountID{}, 0, newMalformedError(err)
	}
	if len(raw) != ss58PayloadLength {
		return AccountID{}, 0, newLengthError(len(raw))
	}

	sum := ss58Checksum(raw[:1+AccountIDLength])
	if !bytes.Equal(raw[1+AccountIDLength:], sum[:ss58ChecksumLength]) {
		return AccountID{}, 0, newChecksumError()
	}

	var a AccountID
	copy(a[:], raw[1:1+AccountIDLength])
	return a, raw[0], nil
}

// ParseAccountIDHex converts hex presented raw bytes into AccountID.
// The leading "0x" is optional.
func ParseAccountIDHex(s string) (AccountID, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return AccountID{}, err
	}
	if len(b) != AccountIDLength {
		return AccountID{}, fmt.Errorf("account ID must be %d bytes, got %d", AccountIDLength, len(b))
	}
	return BytesToAccountID(b), nil
}

// BytesToAccountID converts bytes slice into AccountID.
// If b is larger than AccountID length, b will be cropped (from the left).
// If b is smaller than AccountID length, b will be extended (from the left).
func BytesToAccountID(b []byte) AccountID {
	var a AccountID
	if len(b) > len(a) {
		b = b[len(b)-AccountIDLength:]
	}
	copy(a[AccountIDLength-len(b):], b)
	return a
}

func ss58Checksum(payload []byte) [Blake2b512Length]byte {
	return Blake2b512(ss58Context, payload)
}
