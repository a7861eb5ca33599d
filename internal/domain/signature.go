package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ValidateSignatureDataURL checks that a captured signature image is an
// inline-encoded data URL. Nothing is ever written to disk; the encoded
// image is stored on the profile or session as-is.
func ValidateSignatureDataURL(s string) error {
	if s == "" {
		return fmt.Errorf("%w: signature image is required", ErrValidation)
	}
	if !strings.HasPrefix(s, "data:image/") {
		return fmt.Errorf("%w: signature must be an inline image data URL", ErrValidation)
	}
	idx := strings.Index(s, ";base64,")
	if idx < 0 {
		return fmt.Errorf("%w: signature must be base64 encoded", ErrValidation)
	}
	if _, err := base64.StdEncoding.DecodeString(s[idx+len(";base64,"):]); err != nil {
		return fmt.Errorf("%w: signature image is not valid base64", ErrValidation)
	}
	return nil
}
