// Package cli handles the interactive command loop for querying the
// word index from a terminal.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler processes user commands from stdin. It accepts flags to
// control behavior such as minimum and maximum query length, display
// limits, and input filtering.
type InputHandler struct {
	engine       *suggest.Engine
	out          *log.Logger
	minQueryLen  int
	maxQueryLen  int
	displayLimit int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *suggest.Engine, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:       engine,
		out:          logger.New(""),
		minQueryLen:  minLength,
		maxQueryLen:  maxLength,
		displayLimit: limit,
		noFilter:     noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and passes
// the trimmed line to handleLine for dispatch. The loop terminates on a
// read error or the quit command.
func (h *InputHandler) Start() error {
	log.Print("SpellServe CLI")
	log.Print("commands: complete <prefix> | search <word> | prefix <p> | suggest <word> | add <word> | stats | quit")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !h.handleLine(line) {
			return nil
		}
	}
}

// handleLine dispatches one command. Returns false when the loop should
// stop.
func (h *InputHandler) handleLine(line string) bool {
	fields := strings.Fields(line)
	command := fields[0]
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch command {
	case "quit", "exit":
		return false
	case "stats":
		for k, v := range h.engine.Stats() {
			h.out.Printf("%-14s %s", k, utils.FormatWithCommas(v))
		}
	case "add":
		if !utils.IsAlphabetic(arg) {
			log.Errorf("Words must be non-empty and alphabetic: '%s'", arg)
			break
		}
		h.engine.Insert(arg)
		h.out.Printf("Added '%s' (%s words total)", arg, utils.FormatWithCommas(h.engine.Len()))
	case "search":
		h.withValidQuery(arg, func() {
			if h.engine.Lookup(arg) {
				h.out.Printf("'%s' is in the dictionary", arg)
			} else {
				h.out.Printf("'%s' is NOT in the dictionary", arg)
			}
		})
	case "prefix":
		h.withValidQuery(arg, func() {
			h.out.Printf("words starting with '%s': %v", arg, h.engine.HasPrefix(arg))
		})
	case "complete":
		h.withValidQuery(arg, func() { h.showCompletions(arg) })
	case "suggest":
		h.withValidQuery(arg, func() { h.showCorrections(arg) })
	default:
		// bare input completes, the mode people reach for most
		h.withValidQuery(command, func() { h.showCompletions(command) })
	}
	return true
}

// withValidQuery runs fn only when the query passes length and filter
// checks.
func (h *InputHandler) withValidQuery(query string, fn func()) {
	if len(query) < h.minQueryLen {
		log.Errorf("Query too short: '%s'", query)
		return
	}
	if len(query) > h.maxQueryLen {
		log.Errorf("Query too long: '%s'", query)
		return
	}
	if !h.noFilter && !utils.IsValidInput(query) {
		log.Warnf("No results for input: '%s'", query)
		return
	}
	fn()
}

// showCompletions prints up to displayLimit completions; the trim to a
// display limit happens here, never in the index.
func (h *InputHandler) showCompletions(prefix string) {
	start := time.Now()
	words := h.engine.Complete(prefix, h.displayLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(words) == 0 {
		log.Warnf("No completions found for prefix: '%s'", prefix)
		return
	}

	h.out.Printf("Found %d completions for prefix '%s':", len(words), prefix)
	for i, w := range words {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
		h.out.Printf("%2d. %s", i+1, clWord)
	}
}

// showCorrections prints spelling suggestions, branching on the
// already-correct signal rather than the list contents.
func (h *InputHandler) showCorrections(word string) {
	start := time.Now()
	result := h.engine.Correct(word)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if result.AlreadyCorrect {
		h.out.Printf("'%s' is spelled correctly", word)
		return
	}
	if len(result.Corrections) == 0 {
		log.Warnf("No close matches found for '%s'", word)
		return
	}

	h.out.Printf("Did you mean:")
	for i, w := range result.Corrections {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
		h.out.Printf("%2d. %s", i+1, clWord)
	}
}
