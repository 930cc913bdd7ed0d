// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package substrate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadAccountIDError(t *testing.T) {
	cause := errors.New("invalid base58 digit ('0')")

	tests := []struct {
		name string
		err  error
		kind ErrorKind
		msg  string
	}{
		{"malformed", newMalformedError(cause), KindMalformed, "Invalid account ID (invalid base58 digit ('0'))"},
		{"length", newLengthError(12), KindLength, "Invalid account ID (Expected 35 bytes in account ID but found 12)"},
		{"checksum", newChecksumError(), KindChecksum, "Invalid account ID (Invalid hash in account ID)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.msg)
			assert.True(t, IsBadAccountID(tt.err))
			assert.True(t, IsBadAccountIDKind(tt.err, tt.kind))

			wrapped := fmt.Errorf("decode signer: %w", tt.err)
			assert.True(t, IsBadAccountID(wrapped))
			assert.True(t, IsBadAccountIDKind(wrapped, tt.kind))
		})
	}

	assert.ErrorIs(t, newMalformedError(cause), cause)
	assert.Nil(t, errors.Unwrap(newChecksumError()))
	assert.False(t, IsBadAccountIDKind(newChecksumError(), KindLength))
}

func TestIsBadAccountID(t *testing.T) {
	assert.False(t, IsBadAccountID(nil))
	assert.False(t, IsBadAccountID(errors.New("Invalid account ID (Invalid hash in account ID)")))
	assert.False(t, IsBadAccountIDKind(errors.New("other"), KindChecksum))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "malformed", KindMalformed.String())
	assert.Equal(t, "length", KindLength.String())
	assert.Equal(t, "checksum", KindChecksum.String())
	assert.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
}
