package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
)

// Renderer formats command output with a Theme.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a renderer.
func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Success renders a checked line.
func (r *Renderer) Success(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Normal.Render(msg))
}

// Error renders a failed line.
func (r *Renderer) Error(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// Warning renders a warning line.
func (r *Renderer) Warning(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.WarningStyle.Render(msg))
}

// Path renders a labelled filesystem path.
func (r *Renderer) Path(label, path string) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.Highlight.Render(IconConfig),
		r.theme.Title.Render(label),
		r.theme.Subtle.Render(path),
	)
}

// PasswordSet renders the confirmation of `kiosk passwd`.
func (r *Renderer) PasswordSet(configFile string) string {
	return fmt.Sprintf("%s %s\n  %s",
		r.theme.SuccessStyle.Render(IconLock),
		r.theme.Normal.Render("Kiosk password updated"),
		r.theme.Subtle.Render(configFile),
	)
}

// PurgeTargets renders what `kiosk purge` would remove.
func (r *Renderer) PurgeTargets(targets []entity.PurgeTarget) string {
	var sb strings.Builder
	sb.WriteString(r.theme.Title.Render("The following will be removed:"))
	sb.WriteString("\n")

	var total int64
	count := 0
	for _, t := range targets {
		if !t.Exists {
			continue
		}
		count++
		total += t.Size
		sb.WriteString(fmt.Sprintf("  %s %-7s %s %s\n",
			r.theme.Highlight.Render(purgeIcon(t.Type)),
			t.Type.String(),
			r.theme.Normal.Render(t.Path),
			r.theme.Subtle.Render(fmt.Sprintf("(%s, %s)", t.Description, FormatSize(t.Size))),
		))
	}
	if count == 0 {
		return r.theme.Subtle.Render("Nothing to purge.")
	}
	sb.WriteString(r.theme.Subtle.Render(fmt.Sprintf("Total: %s", FormatSize(total))))
	return r.theme.Box.Render(sb.String())
}

// PurgeResults renders the outcome of every removed target.
func (r *Renderer) PurgeResults(results []entity.PurgeResult) string {
	lines := make([]string, 0, len(results))
	for _, res := range results {
		if res.Success {
			lines = append(lines, r.Success(res.Target.Path))
			continue
		}
		lines = append(lines, r.Error(fmt.Errorf("%s: %w", res.Target.Path, res.Error)))
	}
	return strings.Join(lines, "\n")
}

// RuntimeDependencies renders the `kiosk doctor` report.
func (r *Renderer) RuntimeDependencies(statuses []usecase.RuntimeDependencyStatus) string {
	lines := make([]string, 0, len(statuses))
	for _, s := range statuses {
		name := s.DisplayName
		if name == "" {
			name = s.Module
		}
		switch {
		case s.OK:
			lines = append(lines, r.Success(fmt.Sprintf("%s %s", name, s.Version)))
		case !s.Installed:
			lines = append(lines, r.Error(fmt.Errorf("%s: %s", name, s.Error)))
		case s.Error != "":
			lines = append(lines, r.Warning(fmt.Sprintf("%s %s: %s", name, s.Version, s.Error)))
		default:
			lines = append(lines, r.Warning(fmt.Sprintf("%s %s (need >= %s)", name, s.Version, s.MinVersion)))
		}
	}
	return strings.Join(lines, "\n")
}

func purgeIcon(t entity.PurgeTargetType) string {
	switch t {
	case entity.PurgeTargetConfig:
		return IconConfig
	case entity.PurgeTargetData:
		return IconDatabase
	case entity.PurgeTargetState:
		return IconLogs
	case entity.PurgeTargetCache:
		return IconCache
	default:
		return IconFolder
	}
}

// FormatSize renders a byte count with a binary unit.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
