package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for word index queries.
type Server struct {
	engine *suggest.Engine
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a server speaking msgpack over stdin/stdout.
func NewServer(engine *suggest.Engine, cfg *config.Config) *Server {
	return NewServerIO(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over arbitrary streams, mainly for tests.
func NewServerIO(engine *suggest.Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine: engine,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start signals readiness and then processes requests until the input
// stream closes.
func (s *Server) Start() error {
	log.Debug("Starting server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches on the request action.
func (s *Server) handleRequest(request Request) {
	switch request.Action {
	case "complete":
		s.handleComplete(request)
	case "lookup":
		s.send(BoolResponse{ID: request.ID, Result: s.engine.Lookup(request.Word)})
	case "prefix":
		s.send(BoolResponse{ID: request.ID, Result: s.engine.HasPrefix(request.Word)})
	case "correct":
		s.handleCorrect(request)
	case "add":
		s.handleAdd(request)
	case "stats":
		s.send(StatsResponse{ID: request.ID, Stats: s.engine.Stats()})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleComplete validates the prefix against the configured bounds and
// returns ranked completions.
func (s *Server) handleComplete(request Request) {
	prefix := request.Word

	if len(prefix) < s.cfg.Server.MinPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix must be at least %d characters", s.cfg.Server.MinPrefix), 400)
		log.Debug("Prefix too short in request")
		return
	}
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix), 400)
		log.Debug("Prefix too long in request")
		return
	}
	if s.cfg.Server.EnableFilter && !utils.IsValidInput(prefix) {
		s.send(CompleteResponse{ID: request.ID, Suggestions: []Suggestion{}})
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	words := s.engine.Complete(prefix, limit)
	elapsed := time.Since(start)

	ranks := utils.CreateRankList(len(words))
	suggestions := make([]Suggestion, len(words))
	for i, w := range words {
		suggestions[i] = Suggestion{Word: w, Rank: ranks[i]}
	}

	s.send(CompleteResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleCorrect runs the single-edit suggestion and maps the tagged
// result onto the wire shape.
func (s *Server) handleCorrect(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}

	start := time.Now()
	result := s.engine.Correct(request.Word)
	elapsed := time.Since(start)

	s.send(CorrectResponse{
		ID:          request.ID,
		Correct:     result.AlreadyCorrect,
		Corrections: result.Corrections,
		Count:       len(result.Corrections),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleAdd(request Request) {
	if !utils.IsAlphabetic(request.Word) {
		s.sendError(request.ID, "Word must be non-empty and alphabetic", 400)
		return
	}
	s.engine.Insert(request.Word)
	s.send(StatusResponse{ID: request.ID, Status: "ok"})
}

// send encodes a response onto the output stream.
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
