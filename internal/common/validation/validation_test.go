package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAddress(t *testing.T) {
	v := NewIdentityValidator()

	valid := []string{
		"buyer1",
		"token-contract-1",
		"terra1x46rqay4d3cssq8gxxvqz8xt6nwlz4td20k38v",
		"presale_contract",
	}
	for _, addr := range valid {
		assert.NoError(t, v.ValidateAddress(addr), "expected %q to pass", addr)
	}

	invalid := []string{
		"",
		"ab",
		" buyer1",
		"buyer1 ",
		"Buyer1",
		"not a valid address!",
		"-leading-separator",
		strings.Repeat("a", MaxIdentityLength+1),
	}
	for _, addr := range invalid {
		assert.Error(t, v.ValidateAddress(addr), "expected %q to be rejected", addr)
	}
}
