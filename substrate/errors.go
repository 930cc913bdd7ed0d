// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package substrate

import (
	"errors"
	"fmt"
)

// ErrorKind tells why an account ID was rejected.
type ErrorKind uint8

const (
	// KindMalformed is for text the base-58 decoder refused.
	KindMalformed ErrorKind = iota + 1
	// KindLength is for decoded payloads of the wrong size.
	KindLength
	// KindChecksum is for payloads whose checksum does not match.
	KindChecksum
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindLength:
		return "length"
	case KindChecksum:
		return "checksum"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// BadAccountIDError is returned when a string is not a valid SS58 account ID.
//
// Reason is diagnostic text only. Callers should branch on Kind.
type BadAccountIDError struct {
	Kind   ErrorKind
	Reason string

	// Expected and Actual are the payload lengths, set for KindLength.
	Expected int
	Actual   int

	// Cause is the base-58 decoder error, set for KindMalformed.
	Cause error
}

func (e *BadAccountIDError) Error() string {
	return "Invalid account ID (" + e.Reason + ")"
}

func (e *BadAccountIDError) Unwrap() error {
	return e.Cause
}

func newMalformedError(cause error) error {
	return &BadAccountIDError{
		Kind:   KindMalformed,
		Reason: cause.Error(),
		Cause:  cause,
	}
}

func newLengthError(actual int) error {
	return &BadAccountIDError{
		Kind:     KindLength,
		Reason:   fmt.Sprintf("Expected %d bytes in account ID but found %d", ss58PayloadLength, actual),
		Expected: ss58PayloadLength,
		Actual:   actual,
	}
}

func newChecksumError() error {
	return &BadAccountIDError{
		Kind:   KindChecksum,
		Reason: "Invalid hash in account ID",
	}
}

// IsBadAccountID returns whether err is (or wraps) a BadAccountIDError.
func IsBadAccountID(err error) bool {
	var e *BadAccountIDError
	return errors.As(err, &e)
}

// IsBadAccountIDKind returns whether err is (or wraps) a BadAccountIDError of the given kind.
func IsBadAccountIDKind(err error, kind ErrorKind) bool {
	var e *BadAccountIDError
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
