package deps

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/kiosk/internal/application/port"
)

func TestPkgConfigProbe_MissingCommand(t *testing.T) {
	p := &PkgConfigProbe{lookPath: func(string) (string, error) { return "", errors.New("not found") }}

	_, err := p.ModVersion(context.Background(), "webkitgtk-6.0")
	assert.ErrorIs(t, err, port.ErrPkgConfigMissing)
}

func TestPkgConfigProbe_FailingCommand(t *testing.T) {
	// "false" exits non-zero for any arguments.
	p := &PkgConfigProbe{lookPath: func(string) (string, error) { return "false", nil }}

	_, err := p.ModVersion(context.Background(), "webkitgtk-6.0")
	assert.ErrorIs(t, err, port.ErrLibraryMissing)
	assert.Contains(t, err.Error(), "webkitgtk-6.0")
}
