package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/adey/inkwell/internal/config"
	"github.com/adey/inkwell/internal/machine"
	"github.com/adey/inkwell/internal/writer"
)

type stubGenerator struct {
	res writer.GenerationResult
	err error
}

func (s *stubGenerator) Submit(ctx context.Context, req writer.GenerationRequest) (writer.GenerationResult, error) {
	return s.res, s.err
}

func newTestApp(gen *stubGenerator) *App {
	return New(config.Config{}, machine.New(gen), nil)
}

func TestToolSwitchKeepsLengthValid(t *testing.T) {
	t.Parallel()

	a := newTestApp(&stubGenerator{})

	// cycle through every tool in both directions; the selected length must
	// always belong to the active tool
	for range writer.Tools {
		a.cycleTool(1)
		require.True(t, writer.HasLength(a.tool(), a.length().ID),
			"length %q stale for tool %q", a.length().ID, a.tool())
	}
	a.cycleLength() // move off the first bucket
	a.cycleTool(-1)
	require.True(t, writer.HasLength(a.tool(), a.length().ID))
	require.Equal(t, 0, a.lengthIdx, "switch resets to the first option")
}

func TestSubmitValidationErrorOnStatusLine(t *testing.T) {
	t.Parallel()

	a := newTestApp(&stubGenerator{})
	cmd := a.submit() // empty topic
	require.Nil(t, cmd)
	require.True(t, a.statErr)
	require.Equal(t, machine.Failure, a.machine.State().Phase)
	require.Equal(t, viewCompose, a.state)
}

func TestGenDoneShowsResult(t *testing.T) {
	t.Parallel()

	a := newTestApp(&stubGenerator{res: writer.GenerationResult{Body: "text", WordCount: 650}})
	a.topic.SetValue("Climate Change")

	cmd := a.submit()
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(genDoneMsg)
	require.True(t, ok)

	model, _ := a.Update(done)
	a = model.(*App)
	require.Equal(t, viewResult, a.state)
	require.Equal(t, 650, a.machine.State().Result.WordCount)
}

func TestStaleGenDoneIsDropped(t *testing.T) {
	t.Parallel()

	a := newTestApp(&stubGenerator{res: writer.GenerationResult{Body: "fresh"}})
	a.topic.SetValue("first")
	first := a.submit()
	require.NotNil(t, first)
	firstMsg := first()

	a.topic.SetValue("second")
	second := a.submit()
	require.NotNil(t, second)

	// first arrives after the second submission: view must not change
	model, _ := a.Update(firstMsg)
	a = model.(*App)
	require.Equal(t, viewCompose, a.state)
	require.Equal(t, machine.InFlight, a.machine.State().Phase)

	model, _ = a.Update(second())
	a = model.(*App)
	require.Equal(t, viewResult, a.state)
	require.Equal(t, "fresh", a.machine.State().Result.Body)
}

func TestServiceErrorStaysOnCompose(t *testing.T) {
	t.Parallel()

	a := newTestApp(&stubGenerator{err: &writer.ServiceError{Kind: writer.HTTPStatus, Status: 500, Body: "boom"}})
	a.topic.SetValue("topic")

	cmd := a.submit()
	require.NotNil(t, cmd)
	model, _ := a.Update(cmd())
	a = model.(*App)

	require.Equal(t, viewCompose, a.state)
	require.True(t, a.statErr)
	require.Contains(t, a.status, "500")
	require.Equal(t, machine.Failure, a.machine.State().Phase)
}

func TestCopyAckReverts(t *testing.T) {
	t.Parallel()

	a := newTestApp(&stubGenerator{})
	a.copied = true
	model, _ := a.Update(copyAckExpiredMsg{})
	a = model.(*App)
	require.False(t, a.copied)
}

func TestEscQuitsCompose(t *testing.T) {
	t.Parallel()

	a := newTestApp(&stubGenerator{})
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
