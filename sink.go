package satpam

import (
	"net/http"
	"sync"
)

// Sink receives serialized Set-Cookie strings. The resolver never probes its
// environment for a place to persist cookies; callers inject whichever sink
// fits their runtime.
type Sink interface {
	Write(setCookie string)
}

// NewHeaderSink returns a Sink that appends Set-Cookie headers to the
// response.
func NewHeaderSink(w http.ResponseWriter) Sink {
	return headerSink{header: w.Header()}
}

type headerSink struct {
	header http.Header
}

func (s headerSink) Write(setCookie string) {
	s.header.Add("Set-Cookie", setCookie)
}

// CaptureSink records every written cookie string. Useful in tests and in
// embeddings where the cookie store is not an HTTP response.
type CaptureSink struct {
	mu     sync.Mutex
	values []string
}

func (s *CaptureSink) Write(setCookie string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, setCookie)
}

// Values returns a copy of all writes in order.
func (s *CaptureSink) Values() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Last returns the most recent write, or "" if nothing was written.
func (s *CaptureSink) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return ""
	}
	return s.values[len(s.values)-1]
}

// Len returns the number of writes.
func (s *CaptureSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

type discardSink struct{}

func (discardSink) Write(string) {}
