// Package schema validates emitted records against the Kythe-shaped
// fact/edge contract (spec §6), grounded on the teacher repo's CUE-backed
// validator package — there it guards linter output bound for a policy
// engine, here it guards the sink records bound for a graph store.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed record_schema.cue
var schemaFS embed.FS

// Validator checks sink.Fact/sink.Edge values against #Fact | #Edge.
type Validator struct {
	ctx    *cue.Context
	record cue.Value
}

// New compiles the embedded schema once; callers share one Validator across
// a run.
func New() (*Validator, error) {
	ctx := cuecontext.New()

	schemaBytes, err := schemaFS.ReadFile("record_schema.cue")
	if err != nil {
		return nil, fmt.Errorf("schema: loading embedded schema: %w", err)
	}

	compiled := ctx.CompileBytes(schemaBytes)
	if compiled.Err() != nil {
		return nil, fmt.Errorf("schema: compiling schema: %w", compiled.Err())
	}

	record := compiled.LookupPath(cue.ParsePath("#Record"))
	if record.Err() != nil {
		return nil, fmt.Errorf("schema: looking up #Record: %w", record.Err())
	}

	return &Validator{ctx: ctx, record: record}, nil
}

// Validate marshals data to JSON and unifies it against #Record, returning a
// detailed error on mismatch (wrong field name, wrong edge_kind type, a fact
// carrying a target, and so on).
func (v *Validator) Validate(data interface{}) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("schema: marshaling record: %w", err)
	}

	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return fmt.Errorf("schema: compiling record as CUE: %w", dataValue.Err())
	}

	unified := v.record.Unify(dataValue)
	if err := unified.Validate(); err != nil {
		return fmt.Errorf("schema: record validation failed: %w", err)
	}
	return nil
}

// Errors returns every individual validation failure for data, for
// diagnostics that want more than the first mismatch.
func (v *Validator) Errors(data interface{}) []string {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return []string{fmt.Sprintf("marshal error: %v", err)}
	}

	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return []string{fmt.Sprintf("compile error: %v", dataValue.Err())}
	}

	unified := v.record.Unify(dataValue)
	err = unified.Validate()
	if err == nil {
		return nil
	}

	var out []string
	for _, e := range errors.Errors(err) {
		out = append(out, e.Error())
	}
	return out
}
