package service

import (
	"unicode/utf8"

	"github.com/jask/tacostay/internal/flow"
)

// LengthVerifier accepts any code of flow.OTPLength characters. No code is
// ever sent, so there is nothing to compare against.
type LengthVerifier struct{}

func (LengthVerifier) Verify(_ string, code string) bool {
	return utf8.RuneCountInString(code) == flow.OTPLength
}
