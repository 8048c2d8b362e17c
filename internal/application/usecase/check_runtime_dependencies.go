package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

// RuntimeRequirement is a native library the kiosk needs at a minimum version.
type RuntimeRequirement struct {
	Module      string // pkg-config name
	DisplayName string
	MinVersion  string
}

// DefaultRuntimeRequirements are the libraries behind the gotk4 bindings.
var DefaultRuntimeRequirements = []RuntimeRequirement{
	{Module: "gtk4", DisplayName: "GTK4", MinVersion: "4.14"},
	{Module: "webkitgtk-6.0", DisplayName: "WebKitGTK 6.0", MinVersion: "2.44"},
	{Module: "glib-2.0", DisplayName: "GLib", MinVersion: "2.80"},
}

// RuntimeDependencyStatus is the outcome of one requirement.
type RuntimeDependencyStatus struct {
	RuntimeRequirement
	Installed bool
	Version   string
	OK        bool
	Error     string
}

// CheckRuntimeDependenciesUseCase verifies the native libraries before the
// kiosk is deployed.
type CheckRuntimeDependenciesUseCase struct {
	probe        port.RuntimeVersionProbe
	requirements []RuntimeRequirement
}

// NewCheckRuntimeDependenciesUseCase creates the use case. nil requirements
// use DefaultRuntimeRequirements.
func NewCheckRuntimeDependenciesUseCase(probe port.RuntimeVersionProbe, requirements []RuntimeRequirement) *CheckRuntimeDependenciesUseCase {
	if requirements == nil {
		requirements = DefaultRuntimeRequirements
	}
	return &CheckRuntimeDependenciesUseCase{probe: probe, requirements: requirements}
}

// Execute checks every requirement. ok is false when any is missing or too old.
func (uc *CheckRuntimeDependenciesUseCase) Execute(ctx context.Context) (statuses []RuntimeDependencyStatus, ok bool) {
	log := logging.FromContext(ctx)
	ok = true

	for _, req := range uc.requirements {
		status := RuntimeDependencyStatus{RuntimeRequirement: req}

		version, err := uc.probe.ModVersion(ctx, req.Module)
		switch {
		case err != nil:
			status.Error = err.Error()
		default:
			status.Installed = true
			status.Version = version
			cmp, parsed := compareVersion(version, req.MinVersion)
			if !parsed {
				status.Error = "could not parse version"
			} else {
				status.OK = cmp >= 0
			}
		}

		if !status.OK {
			ok = false
		}
		log.Debug().
			Str("module", req.Module).
			Str("version", status.Version).
			Bool("ok", status.OK).
			Msg("runtime dependency")
		statuses = append(statuses, status)
	}
	return statuses, ok
}

// compareVersion compares dotted numeric versions; missing parts count as 0.
// Trailing non-numeric suffixes ("2.44.1-beta") are ignored.
func compareVersion(a, b string) (cmp int, ok bool) {
	av, ok := parseVersion(a)
	if !ok {
		return 0, false
	}
	bv, ok := parseVersion(b)
	if !ok {
		return 0, false
	}

	for i := 0; i < max(len(av), len(bv)); i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		if x != y {
			if x > y {
				return 1, true
			}
			return -1, true
		}
	}
	return 0, true
}

func parseVersion(s string) ([]int, bool) {
	s = strings.TrimSpace(s)
	if end := strings.IndexFunc(s, func(r rune) bool { return (r < '0' || r > '9') && r != '.' }); end >= 0 {
		s = s[:end]
	}
	if s == "" {
		return nil, false
	}

	fields := strings.Split(s, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, true
}
