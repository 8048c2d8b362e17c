// Package deps probes the native libraries installed on the host.
package deps

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/kiosk/internal/application/port"
)

// PkgConfigProbe queries module versions with pkg-config.
type PkgConfigProbe struct {
	lookPath func(string) (string, error)
}

var _ port.RuntimeVersionProbe = (*PkgConfigProbe)(nil)

// NewPkgConfigProbe creates a probe using the pkg-config found in PATH.
func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{lookPath: exec.LookPath}
}

// ModVersion implements port.RuntimeVersionProbe.
func (p *PkgConfigProbe) ModVersion(ctx context.Context, module string) (string, error) {
	pc, err := p.lookPath("pkg-config")
	if err != nil {
		return "", port.ErrPkgConfigMissing
	}

	out, err := exec.CommandContext(ctx, pc, "--modversion", module).CombinedOutput()
	if err != nil {
		if detail := strings.TrimSpace(string(out)); detail != "" {
			return "", fmt.Errorf("%s: %w: %s", module, port.ErrLibraryMissing, detail)
		}
		return "", fmt.Errorf("%s: %w", module, port.ErrLibraryMissing)
	}
	return strings.TrimSpace(string(out)), nil
}
