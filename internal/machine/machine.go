// Package machine owns the generation lifecycle: one state value, one
// writer, sequence-numbered supersession for overlapping submits.
package machine

import (
	"context"

	"github.com/adey/inkwell/internal/client"
	"github.com/adey/inkwell/internal/writer"
)

// Phase is the active lifecycle variant. Exactly one is active at a time.
type Phase string

const (
	Idle       Phase = "idle"
	Validating Phase = "validating"
	InFlight   Phase = "in_flight"
	Success    Phase = "success"
	Failure    Phase = "failure"
)

// State is a read-only snapshot handed to presentation. Result is only
// meaningful in Success, Err only in Failure.
type State struct {
	Phase  Phase
	Seq    uint64
	Result writer.GenerationResult
	Err    error
}

// Attempt is one in-flight generation. The caller runs Do (typically inside
// a tea.Cmd) and feeds the outcome back through Machine.Resolve with Seq.
type Attempt struct {
	Seq uint64
	Do  func() (writer.GenerationResult, error)
}

// Machine drives the lifecycle. It has exactly one writer (its owner's
// event loop); readers get value snapshots, so no locking is needed.
// Supersession is sequence comparison: a new submit bumps the counter and
// cancels the previous attempt's context, and Resolve ignores any sequence
// that is no longer current.
type Machine struct {
	gen    client.Generator
	state  State
	seq    uint64
	cancel context.CancelFunc
}

func New(gen client.Generator) *Machine {
	return &Machine{gen: gen, state: State{Phase: Idle}}
}

// State returns the current snapshot.
func (m *Machine) State() State { return m.state }

// Submit is the submit intent from any phase. It validates the selections,
// and either lands in Failure (validation error, advisory; the caller may
// resubmit immediately) or moves to InFlight and returns the attempt to run.
// Entering InFlight drops any previous Success/Failure payload.
func (m *Machine) Submit(topic string, tool writer.Tool, tone writer.Tone, lengthID string) (Attempt, bool) {
	// A new submit intent immediately invalidates whatever is still in
	// flight, even if this submit then fails validation.
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.state = State{Phase: Validating, Seq: m.seq}

	req, err := writer.Build(topic, tool, tone, lengthID)
	if err != nil {
		m.state = State{Phase: Failure, Seq: m.seq, Err: err}
		return Attempt{}, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.seq++
	seq := m.seq
	m.state = State{Phase: InFlight, Seq: seq}

	return Attempt{
		Seq: seq,
		Do: func() (writer.GenerationResult, error) {
			return m.gen.Submit(ctx, req)
		},
	}, true
}

// Resolve applies an attempt's outcome. Outcomes for superseded sequence
// numbers are discarded silently and leave the state untouched.
func (m *Machine) Resolve(seq uint64, res writer.GenerationResult, err error) bool {
	if seq != m.seq || m.state.Phase != InFlight {
		return false
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if err != nil {
		m.state = State{Phase: Failure, Seq: seq, Err: err}
	} else {
		m.state = State{Phase: Success, Seq: seq, Result: res}
	}
	return true
}
