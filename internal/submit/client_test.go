package submit

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tezosjh/recruit/internal/form"
	"github.com/tezosjh/recruit/internal/log"
	"github.com/tezosjh/recruit/internal/testutil"
)

var fixedTime = time.Date(2026, 10, 17, 9, 30, 15, 123_000_000, time.UTC)

func fullAnswers() form.Answers {
	return form.Answers{
		form.FieldFullName:         "Ada Lovelace",
		form.FieldMobileNumber:     "+91 98765 43210",
		form.FieldCourse:           "B.Tech CSE",
		form.FieldEnrollmentNumber: "EN2024001",
		form.FieldYearSemester:     "2nd Year, 4th Semester",
		form.FieldTeams:            "Content Team, Tech Team",
		form.FieldPortfolio:        "null",
	}
}

// capture records the last request and replies with body.
func capture(t *testing.T, status int, body string) (*httptest.Server, *http.Request, *url.Values) {
	t.Helper()
	var got http.Request
	var values url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = *r
		raw, _ := io.ReadAll(r.Body)
		values, _ = url.ParseQuery(string(raw))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got, &values
}

func TestPayload(t *testing.T) {
	v := Payload(form.Answers{form.FieldFullName: "Ada"}, fixedTime)

	assert.Equal(t, "2026-10-17T09:30:15.123Z", v.Get("timestamp"))
	assert.Equal(t, "Ada", v.Get("fullName"))
	for _, name := range form.FieldNames() {
		_, ok := v[name]
		assert.True(t, ok, "field %s must be present even when blank", name)
	}
	assert.Len(t, v, 8)
}

func TestPayloadConvertsToUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	v := Payload(nil, time.Date(2026, 10, 17, 15, 0, 15, 123_000_000, ist))
	assert.Equal(t, "2026-10-17T09:30:15.123Z", v.Get("timestamp"))
}

func TestSubmitSuccess(t *testing.T) {
	srv, req, body := capture(t, http.StatusOK, `{"result":"success","row":42}`)

	c, err := NewClient(srv.URL, WithClock(func() time.Time { return fixedTime }))
	require.NoError(t, err)

	require.NoError(t, c.Submit(context.Background(), fullAnswers()))
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	assert.Equal(t, "2026-10-17T09:30:15.123Z", body.Get("timestamp"))
	assert.Equal(t, "Content Team, Tech Team", body.Get("teams"))
	assert.Equal(t, "null", body.Get("portfolio"))
}

func TestSubmitRejected(t *testing.T) {
	srv, _, _ := capture(t, http.StatusOK, `{"result":"error","error":"quota exceeded"}`)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	err = c.Submit(context.Background(), fullAnswers())
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "quota exceeded", rejected.Detail)
	assert.Equal(t, 1, rejected.Attempt)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestSubmitRejectedDetailFallbacks(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"result":"error","error":{"code":429}}`, `{"code":429}`},
		{`{"result":"error"}`, `{"result":"error"}`},
		{`{"status":"ok"}`, `{"status":"ok"}`},
		{`{"result":true}`, `{"result":true}`},
		{`"success"`, `"success"`},
	}
	for _, tt := range tests {
		srv, _, _ := capture(t, http.StatusOK, tt.body)
		c, err := NewClient(srv.URL)
		require.NoError(t, err)

		err = c.Submit(context.Background(), fullAnswers())
		var rejected *RejectedError
		require.ErrorAs(t, err, &rejected, tt.body)
		assert.Equal(t, tt.want, rejected.Detail, tt.body)
	}
}

func TestSubmitNonJSONIsTransportError(t *testing.T) {
	srv, _, _ := capture(t, http.StatusInternalServerError, `<html>Service unavailable</html>`)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	err = c.Submit(context.Background(), fullAnswers())
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.Contains(t, err.Error(), "Network error")
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestSubmitStatusIgnoredWhenResultSucceeds(t *testing.T) {
	srv, _, _ := capture(t, http.StatusFound, `{"result":"success"}`)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	assert.NoError(t, c.Submit(context.Background(), fullAnswers()))
}

func TestSubmitConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	c, err := NewClient(endpoint)
	require.NoError(t, err)

	err = c.Submit(context.Background(), fullAnswers())
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, 1, Attempt(err))
}

func TestSubmitTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewClient(srv.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	err = c.Submit(context.Background(), fullAnswers())
	var transport *TransportError
	assert.ErrorAs(t, err, &transport)
}

func TestRetryCountsAttemptsAndSendsFreshTimestamp(t *testing.T) {
	stub, url := testutil.StubWebhook(t)

	tick := fixedTime
	c, err := NewClient(url, WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}))
	require.NoError(t, err)

	stub.FailWith("quota exceeded")
	err = c.Submit(context.Background(), fullAnswers())
	assert.Equal(t, 1, Attempt(err))
	err = c.Submit(context.Background(), fullAnswers())
	assert.Equal(t, 2, Attempt(err))

	stub.FailWith("")
	require.NoError(t, c.Submit(context.Background(), fullAnswers()))

	subs := stub.Submissions()
	require.Len(t, subs, 1)
	assert.Equal(t, "2026-10-17T09:30:18.123Z", subs[0].Timestamp)
	assert.Equal(t, "Ada Lovelace", subs[0].Fields[form.FieldFullName])
}

func TestSubmitWritesEventLog(t *testing.T) {
	srv, _, _ := capture(t, http.StatusOK, `{"result":"error","error":"quota exceeded"}`)
	events, err := log.NewLogger(filepath.Join(t.TempDir(), "events.jsonl"))
	require.NoError(t, err)

	c, err := NewClient(srv.URL, WithEventLog(events))
	require.NoError(t, err)
	_ = c.Submit(context.Background(), fullAnswers())

	got, err := events.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, log.EventSubmissionStarted, got[0].Event)
	assert.Len(t, got[0].Fields, 7)
	assert.Equal(t, log.EventSubmissionFailed, got[1].Event)
	assert.Equal(t, got[0].SubmissionID, got[1].SubmissionID)
	assert.Contains(t, got[1].Error, "quota exceeded")
	for _, ev := range got {
		assert.NotContains(t, ev.Error, "Ada Lovelace", "answer values stay out of the log")
	}
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient("  ")
	assert.True(t, errors.Is(err, ErrNoEndpoint))
}
