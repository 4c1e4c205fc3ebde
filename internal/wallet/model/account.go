package model

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	addressLength   = 32
	signatureLength = 64
)

// Account is a tracked wallet account.
type Account struct {
	ID      string
	Address string
}

// Validate checks that the account has an id and a well-formed address.
func (a Account) Validate() error {
	if a.ID == "" {
		return errors.New("account id is required")
	}
	if err := ValidateAddress(a.Address); err != nil {
		return fmt.Errorf("account %s: %w", a.ID, err)
	}
	return nil
}

// ValidateAddress reports whether addr decodes to a 32-byte public key.
func ValidateAddress(addr string) error {
	raw, err := base58.Decode(addr)
	if err != nil {
		return fmt.Errorf("decode address %q: %w", addr, err)
	}
	if len(raw) != addressLength {
		return fmt.Errorf("address %q has %d bytes, want %d", addr, len(raw), addressLength)
	}
	return nil
}

// ValidateSignature reports whether sig decodes to a 64-byte transaction signature.
func ValidateSignature(sig string) error {
	raw, err := base58.Decode(sig)
	if err != nil {
		return fmt.Errorf("decode signature %q: %w", sig, err)
	}
	if len(raw) != signatureLength {
		return fmt.Errorf("signature %q has %d bytes, want %d", sig, len(raw), signatureLength)
	}
	return nil
}
