package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/kiosk/internal/application/port/mocks"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManageTheme_LoadFallsBackWhenUnset(t *testing.T) {
	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().Get(mock.Anything, entity.SettingKeyTheme).Return("", false, nil).Once()

	theme, err := NewManageThemeUseCase(store, "").Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, theme)
}

func TestManageTheme_LoadStored(t *testing.T) {
	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().Get(mock.Anything, entity.SettingKeyTheme).Return("light", true, nil).Once()

	theme, err := NewManageThemeUseCase(store, entity.ThemeDark).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, theme)
}

func TestManageTheme_LoadIgnoresGarbage(t *testing.T) {
	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().Get(mock.Anything, entity.SettingKeyTheme).Return("neon", true, nil).Once()

	theme, err := NewManageThemeUseCase(store, entity.ThemeLight).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, theme)
}

func TestManageTheme_LoadStoreError(t *testing.T) {
	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().Get(mock.Anything, entity.SettingKeyTheme).Return("", false, errors.New("locked")).Once()

	theme, err := NewManageThemeUseCase(store, entity.ThemeDark).Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, entity.ThemeDark, theme)
}

func TestManageTheme_Set(t *testing.T) {
	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().Set(mock.Anything, entity.SettingKeyTheme, "light").Return(nil).Once()

	uc := NewManageThemeUseCase(store, entity.ThemeDark)

	require.NoError(t, uc.Set(context.Background(), entity.ThemeLight))
	require.ErrorIs(t, uc.Set(context.Background(), "neon"), entity.ErrInvalidTheme)
}
