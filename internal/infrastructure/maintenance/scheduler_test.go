package maintenance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inlineMain struct{ posted int }

func (m *inlineMain) Post(fn func()) {
	m.posted++
	fn()
}

func TestScheduler_SetSchedule(t *testing.T) {
	s := NewScheduler(context.Background(), &inlineMain{}, func(context.Context) {})

	require.NoError(t, s.SetSchedule("@daily"))
	assert.Equal(t, "@daily", s.Schedule())
	assert.Len(t, s.cron.Entries(), 1)

	require.NoError(t, s.SetSchedule("0 3 * * *"))
	assert.Len(t, s.cron.Entries(), 1, "old entry replaced")

	require.NoError(t, s.SetSchedule(""))
	assert.Empty(t, s.Schedule())
	assert.Empty(t, s.cron.Entries())
}

func TestScheduler_InvalidScheduleDisables(t *testing.T) {
	s := NewScheduler(context.Background(), &inlineMain{}, func(context.Context) {})
	require.NoError(t, s.SetSchedule("@hourly"))

	require.Error(t, s.SetSchedule("not a schedule"))

	assert.Empty(t, s.Schedule())
	assert.Empty(t, s.cron.Entries())
}

func TestScheduler_FirePostsToMainThread(t *testing.T) {
	main := &inlineMain{}
	runs := 0
	s := NewScheduler(context.Background(), main, func(context.Context) { runs++ })

	s.fire()

	assert.Equal(t, 1, main.posted)
	assert.Equal(t, 1, runs)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(context.Background(), &inlineMain{}, func(context.Context) {})

	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}
