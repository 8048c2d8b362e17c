package usecase

import (
	"context"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

// PasswordGate implements port.AuthGate on top of a UI prompter and a
// verifier. A cancelled prompt denies the operation silently.
type PasswordGate struct {
	prompter port.PasswordPrompter
	verifier port.PasswordVerifier
}

var _ port.AuthGate = (*PasswordGate)(nil)

// NewPasswordGate creates a new PasswordGate.
func NewPasswordGate(prompter port.PasswordPrompter, verifier port.PasswordVerifier) *PasswordGate {
	return &PasswordGate{prompter: prompter, verifier: verifier}
}

// Authorize prompts for the password and reports whether it matched.
func (g *PasswordGate) Authorize(ctx context.Context, reason port.AuthReason, done func(granted bool)) {
	log := logging.FromContext(ctx)

	attempts := 0
	validate := func(secret string) bool {
		attempts++
		ok := g.verifier.Verify(secret)
		if !ok {
			log.Warn().Str("reason", string(reason)).Int("attempt", attempts).Msg("incorrect password")
		}
		return ok
	}

	g.prompter.PromptPassword(ctx, reason, validate, func(ok bool) {
		log.Info().Str("reason", string(reason)).Bool("granted", ok).Msg("authorization finished")
		done(ok)
	})
}
