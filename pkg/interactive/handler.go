// Package interactive drives the findings explorer from stdin
// commands: severity filters, per-finding expand/collapse, and the
// expand-all/collapse-all intents. It owns the view selection for the
// lifetime of one displayed report and re-renders after every
// mutation.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/auditlens/auditlens/pkg/finding"
	"github.com/auditlens/auditlens/pkg/ui"
	"github.com/auditlens/auditlens/pkg/view"
)

const helpText = `  commands:
    all | critical | high | medium | low   set the severity filter
    toggle <id>                            expand/collapse one finding
    expand                                 expand all visible findings
    collapse                               collapse everything
    counts                                 show per-level counts
    help                                   this text
    quit                                   exit`

// Handler runs the interactive explorer loop. The selection is owned
// by the handler and guarded by its mutex; commands mutate selection
// state only, never the findings.
type Handler struct {
	mu       sync.Mutex
	findings []finding.Finding
	sel      *view.Selection
	renderer *ui.ListRenderer

	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewHandler creates an explorer over a fixed findings slice. sel
// carries any initial filter/expansion the CLI flags requested.
func NewHandler(findings []finding.Finding, sel *view.Selection, renderer *ui.ListRenderer, in io.Reader, out io.Writer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		findings: findings,
		sel:      sel,
		renderer: renderer,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run renders the initial view and processes commands until quit or
// EOF. Command errors are messages to the user, never loop aborts.
func (h *Handler) Run() error {
	h.render()

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			break
		}
		if h.dispatch(strings.TrimSpace(scanner.Text())) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// dispatch executes one command line. Returns true on quit.
func (h *Handler) dispatch(line string) bool {
	if line == "" {
		return false
	}

	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])

	h.mu.Lock()
	defer h.mu.Unlock()

	switch cmd {
	case "quit", "q", "exit":
		h.logger.Debug("explorer closed")
		return true

	case "help", "h", "?":
		fmt.Fprintln(h.out, helpText)
		return false

	case "counts":
		h.printCounts()
		return false

	case "toggle", "t":
		if len(fields) < 2 {
			fmt.Fprintln(h.out, "  usage: toggle <id>")
			return false
		}
		h.sel.Toggle(fields[1])

	case "expand", "e":
		h.sel.ExpandAll(h.sel.Visible(h.findings))

	case "collapse", "c":
		h.sel.CollapseAll()

	default:
		if level, ok := view.ParseLevel(cmd); ok {
			h.sel.SetFilter(level)
		} else {
			fmt.Fprintf(h.out, "  unknown command %q (try help)\n", cmd)
			return false
		}
	}

	h.renderLocked()
	return false
}

func (h *Handler) render() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renderLocked()
}

func (h *Handler) renderLocked() {
	fmt.Fprint(h.out, h.renderer.Render(h.findings, h.sel))
}

func (h *Handler) printCounts() {
	counts := view.CountsByLevel(h.findings)
	parts := make([]string, 0, len(view.Levels()))
	for _, level := range view.Levels() {
		parts = append(parts, fmt.Sprintf("%s=%d", level, counts[level]))
	}
	fmt.Fprintln(h.out, "  "+strings.Join(parts, " "))
}
