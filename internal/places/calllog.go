package places

import (
	"sync"
	"time"
)

const defaultCallLogSize = 200

// Call records a single request to the places API.
type Call struct {
	Time     time.Time
	Endpoint string
	Method   string
	URL      string
	Status   int
	Duration time.Duration
	Error    string
}

// CallLog is a bounded in-memory log of API calls. Commands run off the UI
// goroutine, so access is locked.
type CallLog struct {
	mu      sync.Mutex
	max     int
	entries []Call
}

// NewCallLog creates a log keeping at most max entries.
func NewCallLog(max int) *CallLog {
	if max <= 0 {
		max = defaultCallLogSize
	}
	return &CallLog{max: max}
}

// Record appends a call. When the log is full the oldest entry is dropped.
func (l *CallLog) Record(endpoint, method, url string, status int, duration time.Duration, callErr error) {
	entry := Call{
		Time:     time.Now(),
		Endpoint: endpoint,
		Method:   method,
		URL:      url,
		Status:   status,
		Duration: duration,
	}
	if callErr != nil {
		entry.Error = callErr.Error()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
}

// Entries returns a copy of the calls, newest first.
func (l *CallLog) Entries() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Call, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len returns the number of recorded calls.
func (l *CallLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
