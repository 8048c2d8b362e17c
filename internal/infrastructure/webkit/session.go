package webkit

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

const cookieDBName = "cookies.db"

// clearedData is every kind of site data the kiosk can accumulate:
// caches, cookies, IndexedDB, local/session storage, service workers and
// cache storage.
const clearedData = webkit.WebsiteDataAll

// Session owns the persistent network session shared by all views.
type Session struct {
	network *webkit.NetworkSession
}

var _ port.WebsiteDataCleaner = (*Session)(nil)

// NewSession creates the persistent network session. It must run before the
// first WebView is created: the first session becomes the process default.
func NewSession(ctx context.Context, dataDir, cacheDir string) (*Session, error) {
	network := webkit.NewNetworkSession(dataDir, cacheDir)
	if network == nil {
		return nil, errors.New("webkit: failed to create network session")
	}
	if network.IsEphemeral() {
		return nil, errors.New("webkit: network session is ephemeral despite data directories")
	}

	cookies := network.CookieManager()
	if cookies == nil {
		return nil, errors.New("webkit: network session has no cookie manager")
	}
	cookiePath := filepath.Join(dataDir, cookieDBName)
	cookies.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
	cookies.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)
	network.SetPersistentCredentialStorageEnabled(true)

	logging.FromContext(ctx).Info().
		Str("data_dir", dataDir).
		Str("cache_dir", cacheDir).
		Str("cookies", cookiePath).
		Msg("persistent network session ready")

	return &Session{network: network}, nil
}

// ClearAll wipes all website data. done runs on the main thread.
func (s *Session) ClearAll(ctx context.Context, done func(error)) {
	manager := s.network.WebsiteDataManager()
	if manager == nil {
		done(errors.New("website data manager unavailable"))
		return
	}
	manager.Clear(ctx, clearedData, 0, func(res gio.AsyncResulter) {
		if err := manager.ClearFinish(res); err != nil {
			done(fmt.Errorf("webkit: %w", err))
			return
		}
		logging.FromContext(ctx).Debug().Msg("website data cleared")
		done(nil)
	})
}
