package sink

import "sync"

// serialized wraps a Sink with a mutex so multiple goroutines extracting
// different files concurrently can share one underlying writer without
// interleaving partial records.
type serialized struct {
	mu   sync.Mutex
	next Sink
}

// Serialize returns a Sink safe for concurrent use by wrapping s with a
// mutex. Use this when one NDJSON writer backs a multi-file pipeline run.
func Serialize(s Sink) Sink {
	return &serialized{next: s}
}

func (s *serialized) WriteFact(f Fact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.WriteFact(f)
}

func (s *serialized) WriteEdge(e Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.WriteEdge(e)
}
