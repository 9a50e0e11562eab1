package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/adey/inkwell/internal/config"
	"github.com/adey/inkwell/internal/export"
	"github.com/adey/inkwell/internal/machine"
	"github.com/adey/inkwell/internal/writer"
)

// App is the presentation shell. It only reads machine snapshots and
// forwards submit intents; the machine owns all lifecycle writes.
type App struct {
	cfg     config.Config
	machine *machine.Machine
	logger  *zap.Logger

	state appState

	// compose selections
	toolIdx   int
	lengthIdx int
	toneIdx   int
	topic     textinput.Model

	// last submitted selections, used by the exporters
	lastTopic  string
	lastLength writer.LengthOption
	lastTone   writer.Tone

	status  string
	statErr bool
	copied  bool
	width   int
	height  int
}

type appState string

const (
	viewCompose appState = "compose"
	viewResult  appState = "result"
)

type genDoneMsg struct {
	seq uint64
	res writer.GenerationResult
	err error
}

type copyAckExpiredMsg struct{}

type statusMsg string

type errMsg struct{ err error }

func New(cfg config.Config, m *machine.Machine, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "What should it write about?"
	ti.Focus()
	return &App{
		cfg:     cfg,
		machine: m,
		logger:  logger,
		state:   viewCompose,
		topic:   ti,
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) tool() writer.Tool { return writer.Tools[a.toolIdx] }

func (a *App) tone() writer.Tone { return writer.Tones[a.toneIdx] }

func (a *App) lengths() []writer.LengthOption {
	ls, err := writer.LengthsFor(a.tool())
	if err != nil {
		// unreachable with a closed enumeration
		a.logger.Error("registry lookup failed", zap.Error(err))
		return nil
	}
	return ls
}

func (a *App) length() writer.LengthOption {
	ls := a.lengths()
	if a.lengthIdx >= len(ls) {
		a.lengthIdx = 0
	}
	return ls[a.lengthIdx]
}

// cycleTool moves the tool selection and resets the length to the new
// tool's first bucket so the selected length can never go stale.
func (a *App) cycleTool(delta int) {
	n := len(writer.Tools)
	a.toolIdx = (a.toolIdx + delta + n) % n
	a.lengthIdx = 0
}

func (a *App) cycleLength() {
	a.lengthIdx = (a.lengthIdx + 1) % len(a.lengths())
}

func (a *App) cycleTone() {
	a.toneIdx = (a.toneIdx + 1) % len(writer.Tones)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		if w := m.Width - 12; w > 20 {
			a.topic.Width = w
		}
	case tea.KeyMsg:
		if a.state == viewResult {
			return a.handleResultKey(m)
		}
		return a.handleComposeKey(m)
	case genDoneMsg:
		if !a.machine.Resolve(m.seq, m.res, m.err) {
			// superseded attempt, drop silently
			return a, nil
		}
		if m.err != nil {
			a.setStatus(m.err.Error(), true)
			return a, nil
		}
		a.state = viewResult
		a.setStatus("", false)
	case statusMsg:
		a.setStatus(string(m), false)
	case errMsg:
		a.setStatus(m.err.Error(), true)
	case copyAckExpiredMsg:
		a.copied = false
	}
	return a, nil
}

func (a *App) handleComposeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit
	case "tab":
		a.cycleTool(1)
		return a, nil
	case "shift+tab":
		a.cycleTool(-1)
		return a, nil
	case "ctrl+l":
		a.cycleLength()
		return a, nil
	case "ctrl+t":
		a.cycleTone()
		return a, nil
	case "enter":
		return a, a.submit()
	}
	var cmd tea.Cmd
	a.topic, cmd = a.topic.Update(m)
	return a, cmd
}

func (a *App) handleResultKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "n", "esc":
		a.state = viewCompose
		a.setStatus("", false)
		return a, nil
	case "c":
		return a, a.copyCmd()
	case "s":
		return a, a.saveTextCmd()
	case "p":
		return a, a.printableCmd()
	case "enter":
		// resubmit with the same selections
		return a, a.submit()
	}
	return a, nil
}

// submit forwards the intent to the machine. A validation failure surfaces
// on the status line; the user edits and presses enter again.
func (a *App) submit() tea.Cmd {
	topic := a.topic.Value()
	tool, tone, length := a.tool(), a.tone(), a.length()

	att, ok := a.machine.Submit(topic, tool, tone, length.ID)
	if !ok {
		if st := a.machine.State(); st.Err != nil {
			a.setStatus(st.Err.Error(), true)
		}
		return nil
	}

	a.lastTopic = topic
	a.lastLength = length
	a.lastTone = tone
	a.state = viewCompose // entering InFlight cleared any previous result
	a.setStatus("writing...", false)

	return func() tea.Msg {
		res, err := att.Do()
		return genDoneMsg{seq: att.Seq, res: res, err: err}
	}
}

func (a *App) copyCmd() tea.Cmd {
	st := a.machine.State()
	if st.Phase != machine.Success {
		return nil
	}
	if err := export.CopyToClipboard(st.Result.Body); err != nil {
		a.logger.Warn("clipboard unavailable", zap.Error(err))
		a.setStatus("clipboard unavailable", true)
		return nil
	}
	a.copied = true
	return tea.Tick(export.CopiedNotice, func(time.Time) tea.Msg {
		return copyAckExpiredMsg{}
	})
}

func (a *App) saveTextCmd() tea.Cmd {
	st := a.machine.State()
	if st.Phase != machine.Success {
		return nil
	}
	topic, body := a.lastTopic, st.Result.Body
	dir := a.cfg.Export.Dir
	return func() tea.Msg {
		path, err := export.WriteText(dir, topic, body)
		if err != nil {
			return errMsg{err}
		}
		return statusMsg("saved " + path)
	}
}

func (a *App) printableCmd() tea.Cmd {
	st := a.machine.State()
	if st.Phase != machine.Success {
		return nil
	}
	p := export.Printable{
		Topic:       a.lastTopic,
		LengthLabel: a.lastLength.Label,
		Tone:        a.lastTone,
		Result:      st.Result,
	}
	dir, logger := a.cfg.Export.Dir, a.logger
	return func() tea.Msg {
		path, err := export.WritePrintable(dir, p, logger)
		if err != nil {
			return errMsg{err}
		}
		return statusMsg("saved " + path)
	}
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statErr = isErr
}
