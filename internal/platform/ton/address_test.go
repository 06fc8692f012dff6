package ton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAddress(t *testing.T) {
	v := NewAddressValidator()

	// User-friendly base64 form (TON Foundation address).
	assert.NoError(t, v.ValidateAddress("EQCD39VS5jcptHL8vMjEXrzGaRcCVYto7HUn4bpAOg8xqB2N"))

	// Raw workchain:hex form.
	assert.NoError(t, v.ValidateAddress("0:"+strings.Repeat("ab", 32)))
}

func TestValidateAddress_Malformed(t *testing.T) {
	v := NewAddressValidator()

	cases := []string{
		"",
		"hello",
		"token_address",
		"EQCD39VS5jcptHL8vMjEXrz",
		"0:zzzz",
		"not a valid address!",
	}
	for _, addr := range cases {
		assert.Error(t, v.ValidateAddress(addr), "expected %q to be rejected", addr)
	}
}
