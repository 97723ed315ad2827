// Package cli handles cmd line input for DBG and testing queries against a built index
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/suffixserve/internal/logger"
	"github.com/bastiangx/suffixserve/internal/utils"
	"github.com/bastiangx/suffixserve/pkg/index"
)

var (
	hitStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	missStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
)

// InputHandler processes user input from stdin, running each line as a
// query against the index. Lines starting with '/' are commands, anything
// else is a Find pattern.
type InputHandler struct {
	idx          *index.Index
	maxPattern   int
	showOffsets  bool
	requestCount int
	out          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(idx *index.Index, maxPattern int, showOffsets bool) *InputHandler {
	return &InputHandler{
		idx:         idx,
		maxPattern:  maxPattern,
		showOffsets: showOffsets,
		out:         logger.New(""),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates on stdin error or EOF.
func (h *InputHandler) Start() error {
	log.Print("SuffixServe CLI")
	log.Printf("indexed %d bytes; type a pattern and press Enter (Ctrl+C to exit)", len(h.idx.Text()))
	log.Print("commands: /r  /rx  /stats  /cache <prefix>")
	reader := bufio.NewReader(os.Stdin)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput runs one command or query and prints the outcome
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if strings.HasPrefix(line, "/") {
		h.handleCommand(line)
		return
	}

	if err := utils.ValidatePattern(line, h.maxPattern); err != nil {
		h.out.Print(missStyle.Render(err.Error()))
		return
	}

	start := time.Now()
	off, found := h.idx.Find(line)
	elapsed := time.Since(start)

	if !found {
		h.out.Print(missStyle.Render("not found"))
		return
	}
	if h.showOffsets {
		h.out.Print(hitStyle.Render(fmt.Sprintf("found at offset %d", off)), "t", elapsed)
	} else {
		h.out.Print(hitStyle.Render("found"), "t", elapsed)
	}
}

func (h *InputHandler) handleCommand(line string) {
	cmd, arg, _ := strings.Cut(line, " ")
	switch cmd {
	case "/r":
		h.out.Print(hitStyle.Render(fmt.Sprintf("%q", h.idx.LongestRepeatingSubstring())))
	case "/rx":
		h.out.Print(hitStyle.Render(fmt.Sprintf("%q", h.idx.LongestRepeat())))
	case "/stats":
		for k, v := range h.idx.Stats() {
			h.out.Print("", k, v)
		}
	case "/cache":
		patterns := h.idx.CachedPatterns(strings.TrimSpace(arg))
		if len(patterns) == 0 {
			h.out.Print(missStyle.Render("nothing cached under that prefix"))
			return
		}
		for _, p := range patterns {
			h.out.Print(hitStyle.Render(p))
		}
	default:
		h.out.Print(missStyle.Render("unknown command " + cmd))
	}
}
