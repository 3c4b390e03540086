package sink

import "fmt"

// Validator checks a single record against the Kythe record contract.
// internal/schema.Validator satisfies this directly.
type Validator interface {
	Validate(data interface{}) error
}

type validating struct {
	next Sink
	v    Validator
}

// Validating wraps s so every record is checked against v before being
// written, turning a malformed fact or edge into an error at emit time
// instead of a downstream graph-store rejection.
func Validating(s Sink, v Validator) Sink {
	return &validating{next: s, v: v}
}

func (s *validating) WriteFact(f Fact) error {
	if err := s.v.Validate(f); err != nil {
		return fmt.Errorf("sink: invalid fact: %w", err)
	}
	return s.next.WriteFact(f)
}

func (s *validating) WriteEdge(e Edge) error {
	if err := s.v.Validate(e); err != nil {
		return fmt.Errorf("sink: invalid edge: %w", err)
	}
	return s.next.WriteEdge(e)
}
