package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MinIdentityLength = 3
	MaxIdentityLength = 90
)

// Loose identity format for non-TON deployments and local development:
// lowercase alphanumeric with a few separators, bech32-style.
var identityRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9:_-]*$`)

// IdentityValidator is the format-only identity check used when TON address
// validation is switched off.
type IdentityValidator struct{}

func NewIdentityValidator() *IdentityValidator {
	return &IdentityValidator{}
}

func (v *IdentityValidator) ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("address cannot be empty")
	}

	if addr != strings.TrimSpace(addr) {
		return fmt.Errorf("address cannot have leading or trailing whitespace")
	}

	if len(addr) < MinIdentityLength {
		return fmt.Errorf("address must be at least %d characters long", MinIdentityLength)
	}

	if len(addr) > MaxIdentityLength {
		return fmt.Errorf("address cannot exceed %d characters", MaxIdentityLength)
	}

	if !identityRegex.MatchString(addr) {
		return fmt.Errorf("address contains invalid characters")
	}

	return nil
}
