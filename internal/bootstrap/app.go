package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/infrastructure/auth"
	"github.com/bnema/kiosk/internal/infrastructure/config"
	"github.com/bnema/kiosk/internal/infrastructure/idle"
	"github.com/bnema/kiosk/internal/infrastructure/maintenance"
	"github.com/bnema/kiosk/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/kiosk/internal/infrastructure/webkit"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/ui/coordinator"
	"github.com/bnema/kiosk/internal/ui/theme"
	"github.com/bnema/kiosk/internal/ui/window"
)

// ApplicationID is the GTK application identifier.
const ApplicationID = "com.bnema.Kiosk"

const windowTitle = "Kiosk"

// Options are the per-run settings coming from the command line.
type Options struct {
	// InitialURL overrides the configured default URL for the first tab.
	InitialURL string
}

// App owns the running kiosk: the GTK application and everything built
// when it activates.
type App struct {
	configs  *config.Manager
	cfg      *config.Config
	prepared *InitResult
	opts     Options
	main     webkit.MainLoop

	gtkApp      *gtk.Application
	window      *window.MainWindow
	host        *webkit.Host
	tabs        *usecase.TabManager
	verifier    *auth.BcryptVerifier
	clearData   *usecase.ClearSiteDataUseCase
	maintenance *maintenance.Scheduler
	inhibitor   *idle.PortalInhibitor
}

// NewApp prepares the application. Nothing touches GTK until Run.
func NewApp(configs *config.Manager, prepared *InitResult, opts Options) *App {
	return &App{
		configs:  configs,
		cfg:      configs.Get(),
		prepared: prepared,
		opts:     opts,
	}
}

// Run blocks in the GTK main loop and returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	// Single instance is enforced by the instance lock, not D-Bus.
	a.gtkApp = gtk.NewApplication(ApplicationID, gio.ApplicationNonUnique)
	a.gtkApp.ConnectActivate(func() { a.activate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.shutdown(ctx) })

	stop := a.handleSignals(ctx)
	defer stop()

	code := a.gtkApp.Run(os.Args[:1])
	log.Info().Int("exit_code", code).Msg("GTK application exited")
	return code
}

func (a *App) activate(ctx context.Context) {
	log := logging.FromContext(ctx)
	logging.Trace().Mark("gtk_activate")

	if a.window != nil {
		a.window.Present()
		return
	}

	session, err := webkit.NewSession(ctx, a.prepared.WebKitDataDir, a.prepared.WebKitCacheDir)
	if err != nil {
		log.Error().Err(err).Msg("failed to create web session")
		a.gtkApp.Quit()
		return
	}

	fallback := entity.ParseTheme(a.cfg.Appearance.Theme)
	themes := usecase.NewManageThemeUseCase(sqlite.NewSettingsRepository(a.prepared.DB), fallback)
	themeManager := theme.NewManager(ctx, fallback)

	a.window = window.New(ctx, a.gtkApp, window.Options{
		Title:       windowTitle,
		Fullscreen:  a.cfg.Window.Fullscreen,
		AlwaysOnTop: a.cfg.Window.AlwaysOnTop,
		Width:       a.cfg.Window.Width,
		Height:      a.cfg.Window.Height,
	}, themeManager, a.main)

	a.host = webkit.NewHost(a.window.Content(), a.window.Window())
	a.tabs = usecase.NewTabManager(usecase.TabManagerConfig{
		DefaultURL:   a.cfg.DefaultURL,
		MaxTabs:      a.cfg.Tabs.MaxTabs,
		RefreshDelay: a.cfg.Tabs.RefreshDelay(),
		Host:         a.host,
		Scheduler:    a.main,
	})

	a.verifier = auth.NewBcryptVerifier(a.cfg.Security.PasswordHash)
	if a.verifier.UsesFactoryPassword() {
		log.Warn().Msg("factory password in use, set one with 'kiosk passwd'")
	}
	gate := usecase.NewPasswordGate(a.window.PasswordPrompter(), a.verifier)

	a.clearData = usecase.NewClearSiteDataUseCase(session, a.tabs, a.window.Toaster(), a.cfg.Notifications.ToastDuration())

	shell := coordinator.NewShellCoordinator(coordinator.ShellConfig{
		Tabs:       a.tabs,
		View:       a.window,
		Gate:       gate,
		ClearData:  a.clearData,
		Theme:      themes,
		InitialURL: a.opts.InitialURL,
	})
	a.window.Bind(shell)

	if err := shell.Start(ctx); err != nil {
		log.Error().Err(err).Msg("failed to open the first tab")
		a.gtkApp.Quit()
		return
	}
	a.window.Present()
	logging.Trace().Mark("window_presented")
	logging.Trace().Finish()

	a.startMaintenance(ctx)
	a.watchConfig(ctx)
	if a.cfg.Window.InhibitIdle {
		a.inhibitIdle(ctx)
	}

	log.Info().
		Str("default_url", a.cfg.DefaultURL).
		Int("max_tabs", a.cfg.Tabs.MaxTabs).
		Str("theme", string(shell.Theme())).
		Msg("kiosk ready")
}

func (a *App) startMaintenance(ctx context.Context) {
	a.maintenance = maintenance.NewScheduler(ctx, a.main, func(jobCtx context.Context) {
		a.clearData.Execute(jobCtx, nil)
	})
	if err := a.maintenance.SetSchedule(a.cfg.Maintenance.ClearDataSchedule); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("scheduled data wipe disabled")
	}
	a.maintenance.Start()
}

// inhibitIdle keeps the screen awake for the lifetime of the window. The
// portal probe talks to D-Bus, so it runs off the main thread.
func (a *App) inhibitIdle(ctx context.Context) {
	go func() {
		inhibitor := idle.NewPortalInhibitor(ctx)
		if err := inhibitor.Inhibit(ctx, "Kiosk display"); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("screen may blank while idle")
		}
		a.main.Post(func() { a.inhibitor = inhibitor })
	}()
}

// watchConfig applies the settings that can change while running: the
// password hash, the toast duration and the wipe schedule.
func (a *App) watchConfig(ctx context.Context) {
	log := logging.FromContext(ctx)
	a.configs.OnConfigChange(func(cfg *config.Config) {
		a.main.Post(func() {
			a.verifier.SetHash(cfg.Security.PasswordHash)
			a.clearData.SetToastDuration(cfg.Notifications.ToastDuration())
			if err := a.maintenance.SetSchedule(cfg.Maintenance.ClearDataSchedule); err != nil {
				log.Warn().Err(err).Msg("ignoring invalid maintenance schedule")
			}
			log.Info().Msg("configuration reloaded")
		})
	})
	if err := a.configs.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload unavailable")
	}
}

// handleSignals quits cleanly on SIGINT/SIGTERM. Signals come from the
// operator's session, so they bypass the password gate.
func (a *App) handleSignals(ctx context.Context) func() {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			logging.FromContext(ctx).Info().Str("signal", sig.String()).Msg("received signal, quitting")
			a.main.Post(a.gtkApp.Quit)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

func (a *App) shutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("shutting down")

	if a.maintenance != nil {
		a.maintenance.Stop()
	}
	if a.tabs != nil {
		a.tabs.Shutdown(ctx)
	}
	if a.host != nil {
		a.host.ClosePopups()
	}
	if a.inhibitor != nil {
		_ = a.inhibitor.Close()
	}
}
