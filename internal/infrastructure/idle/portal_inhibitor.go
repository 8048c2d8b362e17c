// Package idle keeps the kiosk display awake through the XDG Desktop Portal.
package idle

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// Inhibit flags of org.freedesktop.portal.Inhibit.
	flagSuspend = 4
	flagIdle    = 8
)

var _ port.IdleInhibitor = (*PortalInhibitor)(nil)

// PortalInhibitor blocks idle and suspend through org.freedesktop.portal.Inhibit.
// Without a session bus or portal it degrades to bookkeeping only.
type PortalInhibitor struct {
	mu              sync.Mutex
	conn            *dbus.Conn
	requestPath     dbus.ObjectPath
	refcount        int
	supported       bool
	requestComplete bool
	cancelWatch     context.CancelFunc
}

// NewPortalInhibitor connects to the session bus and probes the portal.
func NewPortalInhibitor(ctx context.Context) *PortalInhibitor {
	log := logging.FromContext(ctx)
	inhibitor := &PortalInhibitor{}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: no session bus")
		return inhibitor
	}
	inhibitor.conn = conn

	var version uint32
	err = conn.Object(portalDest, portalPath).
		Call("org.freedesktop.DBus.Properties.Get", 0, portalInterface, "version").
		Store(&version)
	if err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: portal not available")
		return inhibitor
	}

	inhibitor.supported = true
	log.Debug().Uint32("version", version).Msg("idle inhibitor: portal available")
	return inhibitor
}

// Supported reports whether the portal answered.
func (p *PortalInhibitor) Supported() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.supported
}

// Inhibit increments the refcount; the first call asks the portal.
func (p *PortalInhibitor) Inhibit(ctx context.Context, reason string) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.refcount++
	if p.refcount > 1 || !p.supported || p.conn == nil {
		return nil
	}

	options := map[string]dbus.Variant{
		"reason": dbus.MakeVariant(reason),
	}
	var handle dbus.ObjectPath
	err := p.conn.Object(portalDest, portalPath).Call(portalInterface+".Inhibit", 0,
		"", // no parent window handle outside a sandbox
		uint32(flagIdle|flagSuspend),
		options,
	).Store(&handle)
	if err != nil {
		p.refcount--
		return fmt.Errorf("portal inhibit: %w", err)
	}

	p.requestPath = handle
	p.requestComplete = false

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancelWatch = cancel
	go p.watchForResponse(watchCtx, handle)

	log.Info().Str("handle", string(handle)).Str("reason", reason).Msg("idle inhibitor: activated")
	return nil
}

// watchForResponse notes when the portal ends the request on its own,
// after which the Request object is gone and must not be closed.
func (p *PortalInhibitor) watchForResponse(ctx context.Context, handle dbus.ObjectPath) {
	log := logging.FromContext(ctx)

	matchRule := fmt.Sprintf("type='signal',interface='%s',member='Response',path='%s'", requestIface, handle)
	if err := p.conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: failed to add signal match")
		return
	}

	signals := make(chan *dbus.Signal, 1)
	p.conn.Signal(signals)
	defer func() {
		p.conn.RemoveSignal(signals)
		_ = p.conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
	}()

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return
			}
			if sig.Path == handle && sig.Name == requestIface+".Response" {
				p.mu.Lock()
				p.requestComplete = true
				p.mu.Unlock()
				log.Debug().Str("handle", string(handle)).Msg("idle inhibitor: request completed by portal")
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Uninhibit decrements the refcount and releases the portal request at zero.
func (p *PortalInhibitor) Uninhibit(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.refcount <= 0 {
		return nil
	}
	p.refcount--
	if p.refcount > 0 {
		return nil
	}

	p.releaseLocked()
	logging.FromContext(ctx).Info().Msg("idle inhibitor: deactivated")
	return nil
}

// IsInhibited reports whether any Inhibit call is outstanding.
func (p *PortalInhibitor) IsInhibited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refcount > 0
}

// Close releases any inhibition and the bus connection.
func (p *PortalInhibitor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.releaseLocked()
	p.refcount = 0

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}

func (p *PortalInhibitor) releaseLocked() {
	if p.cancelWatch != nil {
		p.cancelWatch()
		p.cancelWatch = nil
	}
	if p.conn != nil && p.requestPath != "" && !p.requestComplete {
		_ = p.conn.Object(portalDest, p.requestPath).Call(requestIface+".Close", 0).Err
	}
	p.requestPath = ""
	p.requestComplete = false
}
