// Package submit delivers a completed application to the spreadsheet webhook.
package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/tezosjh/recruit/internal/form"
	"github.com/tezosjh/recruit/internal/log"
)

// TimestampLayout is the ISO 8601 layout of the timestamp field, in UTC with
// millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const resultSuccess = "success"

// ErrNoEndpoint is returned by NewClient when the endpoint is blank.
var ErrNoEndpoint = errors.New("submit: endpoint is required")

// Submitter delivers a complete answer set. The TUI and the line runner
// depend on this rather than on *Client.
type Submitter interface {
	Submit(ctx context.Context, answers form.Answers) error
}

// Client posts applications to a fixed endpoint, one attempt per call.
type Client struct {
	endpoint string
	http     *http.Client
	now      func() time.Time
	logger   *zap.Logger
	events   *log.Logger
	tracker  *Tracker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Transport: c.http.Transport, Timeout: d}
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithEventLog records submission events to l.
func WithEventLog(l *log.Logger) Option {
	return func(c *Client) { c.events = l }
}

// WithTracker shares a failure tracker between clients.
func WithTracker(t *Tracker) Option {
	return func(c *Client) { c.tracker = t }
}

// NewClient returns a Client for endpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, ErrNoEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		now:      time.Now,
		logger:   zap.NewNop(),
		tracker:  NewTracker(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Payload builds the form body: a capture timestamp plus every question
// field, blank when unanswered.
func Payload(answers form.Answers, at time.Time) url.Values {
	v := url.Values{}
	v.Set("timestamp", at.UTC().Format(TimestampLayout))
	for _, name := range form.FieldNames() {
		v.Set(name, answers[name])
	}
	return v
}

// Submit performs one POST of answers. It returns nil only when the webhook
// replies with JSON whose result is "success"; otherwise a *RejectedError or
// *TransportError.
func (c *Client) Submit(ctx context.Context, answers form.Answers) error {
	id := uuid.NewString()
	applicant := answers[form.FieldEnrollmentNumber]
	started := time.Now()
	logger := c.logger.With(zap.String("submission", id))

	c.appendEvent(log.LogEvent{
		Event:        log.EventSubmissionStarted,
		SubmissionID: id,
		Fields:       filledFields(answers),
		Attempt:      c.tracker.Failures(applicant) + 1,
	})
	logger.Info("submitting application", zap.Int("fields", len(answers)))

	status, err := c.post(ctx, Payload(answers, c.now()))
	elapsed := time.Since(started)

	if err != nil {
		attempt := c.tracker.RecordFailure(applicant)
		err = withAttempt(err, attempt)
		logger.Warn("submission failed",
			zap.Error(err),
			zap.Int("status", status),
			zap.Int("failures", attempt),
		)
		c.appendEvent(log.LogEvent{
			Event:        log.EventSubmissionFailed,
			SubmissionID: id,
			Attempt:      attempt,
			Status:       status,
			Error:        err.Error(),
			DurationMs:   elapsed.Milliseconds(),
		})
		return err
	}

	c.tracker.Clear(applicant)
	logger.Info("submission accepted", zap.Int("status", status), zap.Duration("elapsed", elapsed))
	c.appendEvent(log.LogEvent{
		Event:        log.EventSubmissionSucceeded,
		SubmissionID: id,
		Status:       status,
		DurationMs:   elapsed.Milliseconds(),
	})
	return nil
}

// post sends body and interprets the reply. The status is returned for
// logging only; the JSON result field alone decides success.
func (c *Client) post(ctx context.Context, body url.Values) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body.Encode()))
	if err != nil {
		return 0, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &TransportError{Err: fmt.Errorf("reading response: %w", err)}
	}
	if !gjson.ValidBytes(raw) {
		return resp.StatusCode, &TransportError{
			Err: fmt.Errorf("invalid JSON response (HTTP %d)", resp.StatusCode),
		}
	}

	result := gjson.GetBytes(raw, "result")
	if result.Type == gjson.String && result.Str == resultSuccess {
		return resp.StatusCode, nil
	}

	return resp.StatusCode, &RejectedError{Detail: rejectionDetail(raw), Status: resp.StatusCode}
}

// rejectionDetail prefers the reply's error value and falls back to the
// whole body.
func rejectionDetail(raw []byte) string {
	if e := gjson.GetBytes(raw, "error"); e.Exists() && e.Type != gjson.Null {
		if e.Type == gjson.String {
			return e.Str
		}
		return e.Raw
	}
	if detail := strings.TrimSpace(string(raw)); detail != "" {
		return detail
	}
	return "Unknown error"
}

func withAttempt(err error, attempt int) error {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		rejected.Attempt = attempt
		return rejected
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		transport.Attempt = attempt
		return transport
	}
	return err
}

func filledFields(answers form.Answers) []string {
	var fields []string
	for _, name := range form.FieldNames() {
		if answers[name] != "" {
			fields = append(fields, name)
		}
	}
	return fields
}

func (c *Client) appendEvent(ev log.LogEvent) {
	if err := c.events.Append(ev); err != nil {
		c.logger.Warn("appending event log", zap.Error(err))
	}
}

// Attempt extracts the failure count carried by a submission error, or 0.
func Attempt(err error) int {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Attempt
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return transport.Attempt
	}
	return 0
}
