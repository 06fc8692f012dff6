package ton

import (
	"fmt"

	"github.com/xssnick/tonutils-go/address"
)

// AddressValidator checks TON address format, both the user-friendly base64
// form and the raw workchain:hex form. Format check only, no existence check.
type AddressValidator struct{}

func NewAddressValidator() *AddressValidator {
	return &AddressValidator{}
}

func (v *AddressValidator) ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("empty address")
	}
	if _, err := address.ParseAddr(addr); err == nil {
		return nil
	}
	if _, err := address.ParseRawAddr(addr); err == nil {
		return nil
	}
	return fmt.Errorf("malformed TON address %q", addr)
}
