package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/suffixserve/internal/utils"
	"github.com/bastiangx/suffixserve/pkg/config"
	"github.com/bastiangx/suffixserve/pkg/index"
)

// Server handles the IPC for suffix tree queries
type Server struct {
	idx *index.Index // nil until the first index op
	cfg *config.Config
	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a new query server using stdin/stdout for IPC
func NewServer(cfg *config.Config) *Server {
	return newServer(cfg, os.Stdin, os.Stdout)
}

func newServer(cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		cfg: cfg,
		dec: msgpack.NewDecoder(r),
		enc: msgpack.NewEncoder(w),
	}
}

// Preload installs an index built before the IPC loop starts. Clients can
// still replace it with an index op.
func (s *Server) Preload(idx *index.Index) {
	s.idx = idx
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting server.")

	s.send(ReadyResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("stdin closed, shutting down")
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "index":
		s.handleIndex(request)
	case "find":
		s.handleFind(request)
	case "repeat":
		s.handleRepeat(request, false)
	case "repeat_exact":
		s.handleRepeat(request, true)
	case "stats":
		s.handleStats(request)
	case "health":
		s.send(ReadyResponse{Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

func (s *Server) handleIndex(request Request) {
	if err := utils.ValidateText(request.Text, s.cfg.Server.MaxText); err != nil {
		s.sendError(request.ID, err.Error(), 400)
		log.Debugf("Rejected text of %d bytes", len(request.Text))
		return
	}

	var (
		idx *index.Index
		err error
	)
	if s.cfg.Index.EnableCache {
		idx, err = index.NewWithCache(request.Text, s.cfg.Index.CacheSize)
	} else {
		idx, err = index.New(request.Text)
	}
	if err != nil {
		s.sendError(request.ID, err.Error(), 422)
		return
	}

	s.idx = idx
	log.Debugf("Indexed text: %q", utils.Truncate(request.Text, 48))
	s.send(IndexResponse{ID: request.ID, Status: "ok", Length: len(request.Text)})
}

func (s *Server) handleFind(request Request) {
	if s.idx == nil {
		s.sendError(request.ID, "No text indexed yet", 409)
		return
	}
	if err := utils.ValidatePattern(request.Pattern, s.cfg.Server.MaxPattern); err != nil {
		s.sendError(request.ID, err.Error(), 400)
		log.Debugf("Rejected pattern of %d bytes", len(request.Pattern))
		return
	}

	start := time.Now()
	off, found := s.idx.Find(request.Pattern)
	elapsed := time.Since(start)

	s.send(FindResponse{
		ID:        request.ID,
		Offset:    off,
		Found:     found,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleRepeat(request Request, exact bool) {
	if s.idx == nil {
		s.sendError(request.ID, "No text indexed yet", 409)
		return
	}

	start := time.Now()
	var sub string
	if exact {
		sub = s.idx.LongestRepeat()
	} else {
		sub = s.idx.LongestRepeatingSubstring()
	}
	elapsed := time.Since(start)

	s.send(RepeatResponse{
		ID:        request.ID,
		Substring: sub,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleStats(request Request) {
	if s.idx == nil {
		s.sendError(request.ID, "No text indexed yet", 409)
		return
	}
	s.send(StatsResponse{ID: request.ID, Stats: s.idx.Stats()})
}

// send encodes one response message onto the stream
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Status: code})
}
