package port

import "context"

// AuthReason describes why a secret is being requested.
type AuthReason string

const (
	AuthReasonSettings AuthReason = "settings"
	AuthReasonClose    AuthReason = "close"
)

// PasswordPrompter asks the user for a secret.
// validate is called for every submitted value; the prompt stays open and
// reports the mismatch until validate returns true or the user cancels.
// done is called exactly once with the final outcome.
type PasswordPrompter interface {
	PromptPassword(ctx context.Context, reason AuthReason, validate func(secret string) bool, done func(ok bool))
}

// PasswordVerifier checks a secret against the configured one.
type PasswordVerifier interface {
	Verify(secret string) bool
}

// AuthGate requests a secret and reports whether it matched.
// A cancelled prompt reports false.
type AuthGate interface {
	Authorize(ctx context.Context, reason AuthReason, done func(granted bool))
}
