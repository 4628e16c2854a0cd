// Package stubhook serves a stand-in for the spreadsheet webhook so the form
// can be exercised end to end without touching the real sheet.
package stubhook

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tezosjh/recruit/internal/form"
)

// Submission is one recorded form post.
type Submission struct {
	Timestamp string            `json:"timestamp"`
	Fields    map[string]string `json:"fields"`
}

// response mirrors what the spreadsheet script replies with.
type response struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

// Server records submissions and answers like the spreadsheet script.
type Server struct {
	echo   *echo.Echo
	logger *zap.Logger

	mu          sync.Mutex
	submissions []Submission
	failWith    string
}

// New creates a Server. A nil logger discards output.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, logger: logger}
	e.POST("/", s.handleSubmit)
	e.POST("/exec", s.handleSubmit)
	e.GET("/submissions", s.handleList)
	return s
}

// FailWith makes subsequent submissions report an error with msg.
// An empty msg restores success replies.
func (s *Server) FailWith(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = msg
}

// Submissions returns a copy of everything received so far.
func (s *Server) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

// ServeHTTP lets the server be mounted in httptest or another mux.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("stub webhook listening", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleSubmit(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusOK, response{Result: "error", Error: "unreadable form: " + err.Error()})
	}

	sub := Submission{
		Timestamp: params.Get("timestamp"),
		Fields:    make(map[string]string, len(form.FieldNames())),
	}
	for _, name := range form.FieldNames() {
		sub.Fields[name] = params.Get(name)
	}

	s.mu.Lock()
	failWith := s.failWith
	if failWith == "" {
		s.submissions = append(s.submissions, sub)
	}
	s.mu.Unlock()

	if failWith != "" {
		s.logger.Warn("stub rejecting submission", zap.String("error", failWith))
		return c.JSON(http.StatusOK, response{Result: "error", Error: failWith})
	}

	s.logger.Info("stub recorded submission",
		zap.String("timestamp", sub.Timestamp),
		zap.Int("fields", len(params)),
	)
	return c.JSON(http.StatusOK, response{Result: "success"})
}

func (s *Server) handleList(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Submissions())
}
