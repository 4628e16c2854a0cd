package submit

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	failureWindow  = time.Hour
	failureCleanup = 10 * time.Minute
	anonymousKey   = "<anonymous>"
)

// Tracker counts failed attempts per applicant within a sliding hour.
// Counts are informational; nothing is throttled.
type Tracker struct {
	failures *cache.Cache
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{failures: cache.New(failureWindow, failureCleanup)}
}

// RecordFailure bumps and returns the failure count for key.
func (t *Tracker) RecordFailure(key string) int {
	key = trackerKey(key)
	if err := t.failures.Add(key, 1, cache.DefaultExpiration); err == nil {
		return 1
	}
	n, err := t.failures.IncrementInt(key, 1)
	if err != nil {
		// Expired between Add and Increment.
		t.failures.Set(key, 1, cache.DefaultExpiration)
		return 1
	}
	return n
}

// Failures returns the current count for key.
func (t *Tracker) Failures(key string) int {
	v, ok := t.failures.Get(trackerKey(key))
	if !ok {
		return 0
	}
	return v.(int)
}

// Clear forgets key, typically after a successful submission.
func (t *Tracker) Clear(key string) {
	t.failures.Delete(trackerKey(key))
}

func trackerKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return anonymousKey
	}
	return key
}
