package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/kiosk/internal/application/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingReloader struct{ calls int }

func (r *countingReloader) ReloadActive(context.Context) { r.calls++ }

func TestClearSiteData_SuccessReloadsAndToasts(t *testing.T) {
	ctx := context.Background()
	cleaner := mocks.NewMockWebsiteDataCleaner(t)
	notifier := mocks.NewMockNotifier(t)
	reloader := &countingReloader{}

	cleaner.EXPECT().ClearAll(mock.Anything, mock.Anything).
		Run(func(_ context.Context, done func(error)) { done(nil) }).Once()
	notifier.EXPECT().Show(mock.Anything, "Site data cleared", DefaultToastDuration).Once()

	var result error = errors.New("unset")
	NewClearSiteDataUseCase(cleaner, reloader, notifier, 0).Execute(ctx, func(err error) { result = err })

	require.NoError(t, result)
	assert.Equal(t, 1, reloader.calls)
}

func TestClearSiteData_FailureToastsWithoutReload(t *testing.T) {
	ctx := context.Background()
	cleaner := mocks.NewMockWebsiteDataCleaner(t)
	notifier := mocks.NewMockNotifier(t)
	reloader := &countingReloader{}

	cleaner.EXPECT().ClearAll(mock.Anything, mock.Anything).
		Run(func(_ context.Context, done func(error)) { done(errors.New("disk full")) }).Once()
	notifier.EXPECT().Show(mock.Anything, mock.MatchedBy(func(msg string) bool {
		return msg == "Failed to clear data: disk full"
	}), ErrorToastDuration).Once()

	var result error
	NewClearSiteDataUseCase(cleaner, reloader, notifier, 0).Execute(ctx, func(err error) { result = err })

	require.Error(t, result)
	assert.Equal(t, 0, reloader.calls)
}

func TestClearSiteData_ConfiguredToastDuration(t *testing.T) {
	cleaner := mocks.NewMockWebsiteDataCleaner(t)
	notifier := mocks.NewMockNotifier(t)

	cleaner.EXPECT().ClearAll(mock.Anything, mock.Anything).
		Run(func(_ context.Context, done func(error)) { done(nil) }).Once()
	notifier.EXPECT().Show(mock.Anything, "Site data cleared", 5*DefaultToastDuration).Once()

	uc := NewClearSiteDataUseCase(cleaner, nil, notifier, DefaultToastDuration)
	uc.SetToastDuration(5 * DefaultToastDuration)
	uc.Execute(context.Background(), nil)
}
