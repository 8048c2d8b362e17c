package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

const (
	// DefaultToastDuration is how long informational toasts stay visible.
	DefaultToastDuration = 2 * time.Second
	// ErrorToastDuration is how long failure toasts stay visible.
	ErrorToastDuration = 4 * time.Second

	clearDataSuccessMessage = "Site data cleared"
)

// ActiveReloader reloads whatever the user is looking at.
type ActiveReloader interface {
	ReloadActive(ctx context.Context)
}

// ClearSiteDataUseCase wipes cookies, caches and site storage, then reloads
// the active view so the page starts from a clean state.
type ClearSiteDataUseCase struct {
	cleaner       port.WebsiteDataCleaner
	reloader      ActiveReloader
	notifier      port.Notifier
	toastDuration time.Duration
}

// NewClearSiteDataUseCase creates the use case. toastDuration <= 0 uses the default.
func NewClearSiteDataUseCase(
	cleaner port.WebsiteDataCleaner,
	reloader ActiveReloader,
	notifier port.Notifier,
	toastDuration time.Duration,
) *ClearSiteDataUseCase {
	if toastDuration <= 0 {
		toastDuration = DefaultToastDuration
	}
	return &ClearSiteDataUseCase{
		cleaner:       cleaner,
		reloader:      reloader,
		notifier:      notifier,
		toastDuration: toastDuration,
	}
}

// SetToastDuration changes the success toast duration (live config reload).
func (uc *ClearSiteDataUseCase) SetToastDuration(d time.Duration) {
	if d > 0 {
		uc.toastDuration = d
	}
}

// Execute starts clearing. done, if non-nil, receives the final error.
func (uc *ClearSiteDataUseCase) Execute(ctx context.Context, done func(error)) {
	log := logging.FromContext(ctx)
	log.Info().Msg("clearing site data")

	uc.cleaner.ClearAll(ctx, func(err error) {
		if err != nil {
			uc.notifier.Show(ctx, ClearDataFailureMessage(err), ErrorToastDuration)
			err = fmt.Errorf("clear site data: %w", err)
			log.Error().Err(err).Msg("failed to clear site data")
		} else {
			log.Info().Msg("site data cleared")
			if uc.reloader != nil {
				uc.reloader.ReloadActive(ctx)
			}
			uc.notifier.Show(ctx, clearDataSuccessMessage, uc.toastDuration)
		}
		if done != nil {
			done(err)
		}
	})
}

// ClearDataFailureMessage is the toast text shown when clearing fails.
func ClearDataFailureMessage(err error) string {
	return "Failed to clear data: " + err.Error()
}
