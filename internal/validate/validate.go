// Package validate checks user-entered text for IP address syntax before any
// lookup is dispatched.
package validate

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/ipmark/ipmark/internal/common"
)

// InvalidFormatError reports text that is not a syntactically valid IPv4 or
// IPv6 address. It carries the original input for display.
type InvalidFormatError struct {
	Text string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("'%s' is not a valid IP address", e.Text)
}

// Address validates user input as an IPv4 or IPv6 literal and returns its
// canonical textual form. Input is trimmed first. An empty string yields
// common.ErrEmptyInput; anything that fails address parsing yields an
// *InvalidFormatError. No network access is involved.
func Address(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", common.ErrEmptyInput
	}

	addr, err := netip.ParseAddr(text)
	if err != nil {
		return "", &InvalidFormatError{Text: text}
	}

	return addr.String(), nil
}
