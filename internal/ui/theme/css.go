package theme

import "strings"

// GenerateCSS creates the GTK4 stylesheet for the shell using p.
func GenerateCSS(p Palette) string {
	var sb strings.Builder

	// GTK4 accepts custom properties under :root.
	sb.WriteString("/* Theme variables */\n")
	sb.WriteString(":root {\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("}\n\n")

	sb.WriteString(windowCSS)
	sb.WriteString("\n")
	sb.WriteString(navBarCSS)
	sb.WriteString("\n")
	sb.WriteString(tabStripCSS)
	sb.WriteString("\n")
	sb.WriteString(toastCSS)
	sb.WriteString("\n")
	sb.WriteString(dialogCSS)

	return sb.String()
}

const windowCSS = `window.kiosk-window {
	background-color: var(--bg);
	color: var(--text);
}
`

const navBarCSS = `/* Navigation bar */
.nav-bar {
	background-color: var(--surface);
	border-bottom: 0.0625em solid var(--border);
	padding: 0.25em 0.5em;
}

.nav-bar button {
	background-color: transparent;
	background-image: none;
	border: none;
	border-radius: 0.375em;
	color: var(--text);
	min-width: 2.25em;
	min-height: 2.25em;
}

.nav-bar button:hover {
	background-color: var(--surface-variant);
}

.nav-bar button:disabled {
	color: var(--muted);
}

.url-display {
	background-color: var(--surface-variant);
	border-radius: 0.375em;
	color: var(--muted);
	padding: 0.25em 0.75em;
}

popover.kiosk-menu button {
	padding: 0.375em 0.75em;
}

popover.kiosk-menu button.destructive {
	color: var(--destructive);
}
`

const tabStripCSS = `/* Tab strip */
.tab-strip {
	background-color: var(--surface);
	border-bottom: 0.0625em solid var(--border);
	min-height: 2em;
}

.tab-button {
	background-color: var(--surface-variant);
	background-image: none;
	border: none;
	border-right: 0.0625em solid var(--border);
	border-radius: 0;
	padding: 0.25em 0.5em;
	transition: background-color 200ms ease-in-out;
}

.tab-button:hover {
	background-color: shade(var(--surface-variant), 1.2);
}

.tab-button.tab-button-active {
	background-color: var(--bg);
	box-shadow: inset 0 -0.125em var(--accent);
	font-weight: 600;
}

.tab-title {
	font-size: 0.8125em;
	color: var(--text);
}

button.tab-close {
	background: none;
	border: none;
	min-width: 1.25em;
	min-height: 1.25em;
	padding: 0;
	color: var(--muted);
}

button.tab-close:hover {
	color: var(--destructive);
}

button.tab-new {
	background: none;
	border: none;
	color: var(--text);
}
`

const toastCSS = `/* Toasts */
.toast {
	background-color: var(--surface);
	border: 0.0625em solid var(--border);
	border-radius: 0.5em;
	color: var(--text);
	margin: 1em;
	padding: 0.5em 1em;
}

.toast.toast-success {
	border-color: var(--success);
}

.toast.toast-error {
	border-color: var(--destructive);
}
`

const dialogCSS = `/* Password and settings dialogs */
window.kiosk-dialog {
	background-color: var(--surface);
	color: var(--text);
}

.dialog-body {
	padding: 1.25em;
}

.dialog-title {
	font-size: 1.125em;
	font-weight: 600;
}

.dialog-error {
	color: var(--destructive);
	font-size: 0.8125em;
}

button.suggested-action {
	background-color: var(--accent);
	background-image: none;
	color: var(--bg);
}
`
