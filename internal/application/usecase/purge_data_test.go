package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubXDG struct{ root string }

func (x stubXDG) ConfigDir() (string, error) { return x.root + "/config", nil }
func (x stubXDG) DataDir() (string, error)   { return x.root + "/data", nil }
func (x stubXDG) StateDir() (string, error)  { return x.root + "/state", nil }
func (x stubXDG) CacheDir() (string, error)  { return x.root + "/cache", nil }

type memFS struct {
	sizes     map[string]int64
	removed   []string
	removeErr map[string]error
}

func (f *memFS) Usage(_ context.Context, path string) (port.DirUsage, error) {
	size, ok := f.sizes[path]
	return port.DirUsage{Exists: ok, Size: size}, nil
}

func (f *memFS) RemoveAll(_ context.Context, path string) error {
	if err := f.removeErr[path]; err != nil {
		return err
	}
	f.removed = append(f.removed, path)
	delete(f.sizes, path)
	return nil
}

func TestPurgeData_TargetsReflectDisk(t *testing.T) {
	fs := &memFS{sizes: map[string]int64{"/x/config": 10, "/x/data": 200}}
	uc := NewPurgeDataUseCase(fs, stubXDG{root: "/x"})

	targets, err := uc.GetPurgeTargets(context.Background())
	require.NoError(t, err)
	require.Len(t, targets, 4)

	assert.True(t, targets[0].Exists)
	assert.Equal(t, int64(10), targets[0].Size)
	assert.Equal(t, entity.PurgeTargetData, targets[1].Type)
	assert.Equal(t, int64(200), targets[1].Size)
	assert.False(t, targets[2].Exists)
	assert.False(t, targets[3].Exists)
}

func TestPurgeData_PurgeAllSkipsMissing(t *testing.T) {
	fs := &memFS{sizes: map[string]int64{"/x/config": 10, "/x/cache": 5}}
	uc := NewPurgeDataUseCase(fs, stubXDG{root: "/x"})

	out, err := uc.PurgeAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"/x/config", "/x/cache"}, fs.removed)
	assert.Equal(t, 2, out.SuccessCount)
	assert.Equal(t, int64(15), out.TotalSize)
}

func TestPurgeData_CollectsFailures(t *testing.T) {
	fs := &memFS{
		sizes:     map[string]int64{"/x/config": 1, "/x/state": 1},
		removeErr: map[string]error{"/x/config": errors.New("busy")},
	}
	uc := NewPurgeDataUseCase(fs, stubXDG{root: "/x"})

	out, err := uc.Execute(context.Background(), PurgeInput{TargetTypes: []entity.PurgeTargetType{
		entity.PurgeTargetConfig, entity.PurgeTargetState,
	}})

	require.Error(t, err)
	assert.Equal(t, 1, out.FailureCount)
	assert.Equal(t, 1, out.SuccessCount)
	assert.Equal(t, []string{"/x/state"}, fs.removed)
}
