package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// PurgeDataUseCase discovers and removes the kiosk's on-disk state:
// configuration, the settings database and WebKit data, logs and caches.
type PurgeDataUseCase struct {
	fs  port.FileSystem
	xdg port.XDGPaths
}

// NewPurgeDataUseCase creates a new PurgeDataUseCase.
func NewPurgeDataUseCase(fs port.FileSystem, xdg port.XDGPaths) *PurgeDataUseCase {
	return &PurgeDataUseCase{fs: fs, xdg: xdg}
}

// GetPurgeTargets returns all purge targets with their current state.
func (uc *PurgeDataUseCase) GetPurgeTargets(ctx context.Context) ([]entity.PurgeTarget, error) {
	dirs := []struct {
		typ  entity.PurgeTargetType
		desc string
		get  func() (string, error)
	}{
		{entity.PurgeTargetConfig, "configuration", uc.xdg.ConfigDir},
		{entity.PurgeTargetData, "settings database and site data", uc.xdg.DataDir},
		{entity.PurgeTargetState, "logs", uc.xdg.StateDir},
		{entity.PurgeTargetCache, "web cache", uc.xdg.CacheDir},
	}

	targets := make([]entity.PurgeTarget, 0, len(dirs))
	for _, d := range dirs {
		path, err := d.get()
		if err != nil {
			return nil, fmt.Errorf("resolve %s dir: %w", d.typ, err)
		}
		t := entity.PurgeTarget{Type: d.typ, Path: path, Description: d.desc}

		usage, err := uc.fs.Usage(ctx, path)
		if err != nil {
			return nil, err
		}
		t.Exists = usage.Exists
		t.Size = usage.Size
		targets = append(targets, t)
	}

	return targets, nil
}

// PurgeInput specifies which target types to purge.
type PurgeInput struct {
	TargetTypes []entity.PurgeTargetType
}

// PurgeOutput contains the results of the purge operation.
type PurgeOutput struct {
	Results      []entity.PurgeResult
	TotalSize    int64
	SuccessCount int
	FailureCount int
}

// Execute purges the selected target types.
// Continues on errors, collecting all results.
func (uc *PurgeDataUseCase) Execute(ctx context.Context, input PurgeInput) (*PurgeOutput, error) {
	log := logging.FromContext(ctx)

	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return nil, err
	}

	selected := make(map[entity.PurgeTargetType]struct{}, len(input.TargetTypes))
	for _, tt := range input.TargetTypes {
		selected[tt] = struct{}{}
	}

	out := &PurgeOutput{}
	for _, t := range targets {
		if _, ok := selected[t.Type]; !ok || !t.Exists {
			continue
		}

		res := entity.PurgeResult{Target: t}
		out.TotalSize += t.Size

		if err := uc.fs.RemoveAll(ctx, t.Path); err != nil {
			res.Error = err
			out.FailureCount++
			log.Warn().Err(err).Str("path", t.Path).Stringer("type", t.Type).Msg("purge target failed")
		} else {
			res.Success = true
			out.SuccessCount++
			log.Info().Str("path", t.Path).Stringer("type", t.Type).Msg("purge target removed")
		}

		out.Results = append(out.Results, res)
	}

	if out.FailureCount > 0 {
		return out, fmt.Errorf("failed to remove %d items", out.FailureCount)
	}
	return out, nil
}

// PurgeAll purges all existing targets (for --force mode).
func (uc *PurgeDataUseCase) PurgeAll(ctx context.Context) (*PurgeOutput, error) {
	return uc.Execute(ctx, PurgeInput{TargetTypes: []entity.PurgeTargetType{
		entity.PurgeTargetConfig,
		entity.PurgeTargetData,
		entity.PurgeTargetState,
		entity.PurgeTargetCache,
	}})
}
