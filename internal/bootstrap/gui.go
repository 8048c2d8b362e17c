package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"github.com/bnema/kiosk/internal/infrastructure/config"
	"github.com/bnema/kiosk/internal/logging"
)

// RunGUI starts the kiosk window and blocks until it closes. It must be
// called from the main goroutine with the OS thread locked.
func RunGUI(opts Options) int {
	loaded := LoadEnvFiles()

	configs, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kiosk: %v\n", err)
		return 1
	}
	if err := configs.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "kiosk: %v\n", err)
		return 1
	}
	cfg := configs.Get()

	logging.InitStartupTrace(cfg.Logging.Level)
	logging.Trace().Mark("config_loaded")

	sessionID := logging.GenerateSessionID()
	ctx, closeLog, err := NewLogger(cfg, sessionID)
	defer closeLog()
	log := logging.FromContext(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("file logging disabled")
	}
	defer logging.RecoverPanic(log)
	logging.Trace().SetLogger(log)
	if len(loaded) > 0 {
		log.Debug().Strs("files", loaded).Msg("environment files loaded")
	}

	stateDir, err := config.GetStateDir()
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve state directory")
		return 1
	}
	lock, err := AcquireInstanceLock(stateDir)
	if err != nil {
		if errors.Is(err, ErrAlreadyRunning) {
			log.Error().Msg("kiosk is already running")
		} else {
			log.Error().Err(err).Msg("failed to acquire instance lock")
		}
		return 1
	}
	defer func() { _ = lock.Release() }()

	prepared, err := RunParallelInit(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return 1
	}
	defer prepared.Close()
	logging.Trace().Mark("parallel_init")

	log.Info().
		Str("session", logging.ShortSessionID(sessionID)).
		Str("config", configs.GetConfigFile()).
		Msg("starting kiosk")

	return NewApp(configs, prepared, opts).Run(ctx)
}
