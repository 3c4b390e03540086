package sink

import (
	"encoding/json"
	"fmt"
	"io"
)

// NDJSON writes one JSON object per line to w, matching spec §6's record
// shapes exactly (no pretty-printing: one record, one line).
type NDJSON struct {
	w   io.Writer
	enc *json.Encoder
}

// NewNDJSON wraps w. Callers own w's lifecycle (open/close).
func NewNDJSON(w io.Writer) *NDJSON {
	return &NDJSON{w: w, enc: json.NewEncoder(w)}
}

func (n *NDJSON) WriteFact(f Fact) error {
	if err := n.enc.Encode(f); err != nil {
		return fmt.Errorf("sink: write fact: %w", err)
	}
	return nil
}

func (n *NDJSON) WriteEdge(e Edge) error {
	if err := n.enc.Encode(e); err != nil {
		return fmt.Errorf("sink: write edge: %w", err)
	}
	return nil
}
