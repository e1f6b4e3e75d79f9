package pkg

import "errors"

var (
	// Verification errors 🔒
	ErrVerificationFailed = errors.New("❌ icon set verification failed")
)
