package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/tezosjh/recruit/internal/log"
)

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, []log.LogEvent{
		{
			Time:         time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
			Event:        log.EventSubmissionFailed,
			SubmissionID: "0f8fad5b-d9cb-469f-a165-70867728950e",
			Attempt:      2,
			Status:       200,
			Error:        "Error submitting form: quota exceeded",
		},
		{Event: log.EventSessionReset},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"submission_failed", "0f8fad5b", "attempt=2", "http=200", `error="Error submitting form: quota exceeded"`} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line %q missing %q", lines[0], want)
		}
	}
	if strings.Contains(lines[0], "70867728950e") {
		t.Errorf("submission id should be shortened: %q", lines[0])
	}
	if !strings.Contains(lines[1], "session_reset") {
		t.Errorf("line %q missing session_reset", lines[1])
	}
}
