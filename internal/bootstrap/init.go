// Package bootstrap assembles the kiosk from configuration, storage and the
// GTK shell.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/kiosk/internal/infrastructure/config"
	"github.com/bnema/kiosk/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/kiosk/internal/infrastructure/webkit"
	"github.com/bnema/kiosk/internal/logging"
)

const webkitDirPerm = 0o755

// InitResult holds everything prepared before GTK starts.
type InitResult struct {
	WebKitDataDir  string
	WebKitCacheDir string
	DB             *sql.DB
	Duration       time.Duration
}

// Close releases the database.
func (r *InitResult) Close() {
	if r != nil && r.DB != nil {
		_ = sqlite.Close(r.DB)
	}
}

// RunParallelInit resolves WebKit directories, opens the settings database
// and checks the injected scripts concurrently. The first failure cancels
// the rest.
func RunParallelInit(ctx context.Context, cfg *config.Config) (*InitResult, error) {
	start := time.Now()
	result := &InitResult{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dataDir, cacheDir, err := resolveWebKitDirs()
		if err != nil {
			return fmt.Errorf("resolve directories: %w", err)
		}
		result.WebKitDataDir, result.WebKitCacheDir = dataDir, cacheDir
		return nil
	})

	g.Go(func() error {
		db, err := sqlite.NewConnection(gctx, cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open database at %s: %w", cfg.Database.Path, err)
		}
		result.DB = db
		return nil
	})

	g.Go(webkit.ValidateScripts)

	if err := g.Wait(); err != nil {
		result.Close()
		return nil, err
	}

	result.Duration = time.Since(start)
	logging.FromContext(ctx).Debug().
		Dur("duration", result.Duration).
		Str("webkit_data", result.WebKitDataDir).
		Str("webkit_cache", result.WebKitCacheDir).
		Msg("parallel init complete")
	return result, nil
}

// resolveWebKitDirs creates the cookie/storage and cache directories.
func resolveWebKitDirs() (dataDir, cacheDir string, err error) {
	base, err := config.GetDataDir()
	if err != nil {
		return "", "", fmt.Errorf("resolve data directory: %w", err)
	}
	cacheBase, err := config.GetCacheDir()
	if err != nil {
		return "", "", fmt.Errorf("resolve cache directory: %w", err)
	}
	dataDir = filepath.Join(base, "webkit")
	cacheDir = filepath.Join(cacheBase, "webkit")
	for _, dir := range []string{dataDir, cacheDir} {
		if mkErr := os.MkdirAll(dir, webkitDirPerm); mkErr != nil {
			return "", "", fmt.Errorf("create %s: %w", dir, mkErr)
		}
	}
	return dataDir, cacheDir, nil
}

// NewLogger builds the process logger from configuration. The closer flushes
// the rotated log file.
func NewLogger(cfg *config.Config, sessionID string) (context.Context, func(), error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	if cfg.Logging.Format != "" {
		logCfg.Format = cfg.Logging.Format
	}
	if cfg.Logging.EnableFileLog {
		logCfg.Dir = cfg.Logging.LogDir
		logCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
		logCfg.MaxBackups = cfg.Logging.MaxBackups
		logCfg.MaxAgeDays = cfg.Logging.MaxAgeDays
		logCfg.Compress = cfg.Logging.Compress
	}
	logCfg.SessionID = sessionID
	logCfg = logCfg.ApplyEnv()

	logger, closer, err := logging.New(logCfg)
	ctx := logging.WithContext(context.Background(), logger)
	return ctx, func() { _ = closer.Close() }, err
}
