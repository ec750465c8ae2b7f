package ui

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version information - these can be overridden at build time via ldflags:
// go build -ldflags "-X github.com/auditlens/auditlens/pkg/ui.Version=1.0.0"
var (
	Version   = "0.3.1"
	BuildDate = "dev"
	Commit    = "dev"
)

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses the banner
// and other decorative output).
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled.
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output.
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		// Use ASCII profile to disable colors
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled.
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

const bannerArt = `
                    _ _ _   _
   __ _ _   _  ____| (_) |_| | ___ _ __  ___
  / _` + "`" + ` | | | |/ __ | | | __| |/ _ \ '_ \/ __|
 | (_| | |_| | (_| | | | |_| |  __/ | | \__ \
  \__,_|\__,_|\____|_|_|\__|_|\___|_| |_|___/
`

// PrintBanner prints the startup banner unless silent mode is on.
func PrintBanner() {
	if IsSilent() {
		return
	}
	fmt.Println(SectionStyle.Render(bannerArt))
	fmt.Printf("  %s %s\n\n",
		SubtitleStyle.Render("audit report explorer"),
		SubtitleStyle.Render("v"+Version),
	)
}

// PrintSection prints a styled section header.
func PrintSection(title string) {
	if IsSilent() {
		return
	}
	fmt.Println(SectionStyle.Render("  " + title))
}
