package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// ManageThemeUseCase loads and persists the shell theme.
type ManageThemeUseCase struct {
	store    port.SettingsStore
	fallback entity.Theme
}

// NewManageThemeUseCase creates the use case. fallback is used when nothing
// is stored yet; an invalid fallback becomes entity.DefaultTheme.
func NewManageThemeUseCase(store port.SettingsStore, fallback entity.Theme) *ManageThemeUseCase {
	if !fallback.IsValid() {
		fallback = entity.DefaultTheme
	}
	return &ManageThemeUseCase{store: store, fallback: fallback}
}

// Load returns the stored theme. Unreadable or invalid values yield the
// fallback; only store failures are returned as errors.
func (uc *ManageThemeUseCase) Load(ctx context.Context) (entity.Theme, error) {
	log := logging.FromContext(ctx)

	raw, ok, err := uc.store.Get(ctx, entity.SettingKeyTheme)
	if err != nil {
		return uc.fallback, fmt.Errorf("failed to load theme: %w", err)
	}
	if !ok {
		return uc.fallback, nil
	}

	theme := entity.Theme(raw)
	if !theme.IsValid() {
		log.Warn().Str("value", raw).Msg("ignoring invalid stored theme")
		return uc.fallback, nil
	}
	return theme, nil
}

// Set validates and persists a theme.
func (uc *ManageThemeUseCase) Set(ctx context.Context, theme entity.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("set theme %q: %w", theme, entity.ErrInvalidTheme)
	}
	if err := uc.store.Set(ctx, entity.SettingKeyTheme, string(theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	logging.FromContext(ctx).Info().Str("theme", string(theme)).Msg("theme saved")
	return nil
}
