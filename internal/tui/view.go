package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adey/inkwell/internal/machine"
	"github.com/adey/inkwell/internal/writer"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pickedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	bodyStyle   = lipgloss.NewStyle().PaddingLeft(1)
)

func (a *App) View() string {
	if a.state == viewResult {
		return a.renderResult()
	}
	return a.renderCompose()
}

func (a *App) renderCompose() string {
	out := titleStyle.Render("inkwell") + "\n\n"

	var tools []string
	for i, t := range writer.Tools {
		def, _ := writer.DefinitionFor(t)
		label := def.Label
		if i == a.toolIdx {
			label = pickedStyle.Render("[" + label + "]")
		}
		tools = append(tools, label)
	}
	out += labelStyle.Render("tool   ") + strings.Join(tools, "  ") + "\n"

	length := a.length()
	out += labelStyle.Render("length ") + fmt.Sprintf("%s (%s)", pickedStyle.Render(length.Label), length.Hint) + "\n"
	out += labelStyle.Render("tone   ") + pickedStyle.Render(string(a.tone())) + "\n\n"
	out += labelStyle.Render("topic  ") + a.topic.View() + "\n\n"

	if st := a.machine.State(); st.Phase == machine.InFlight {
		out += "writing...\n"
	}

	out += labelStyle.Render("[tab] tool  [ctrl+l] length  [ctrl+t] tone  [enter] write  [esc] quit")
	return out + a.renderStatus()
}

func (a *App) renderResult() string {
	st := a.machine.State()
	out := titleStyle.Render(a.lastTopic) + "\n"
	out += labelStyle.Render(fmt.Sprintf("%d words · %s · %s · %s",
		st.Result.WordCount, st.Result.ToolUsed, a.lastLength.Label, a.lastTone)) + "\n\n"
	out += bodyStyle.Render(st.Result.Body) + "\n"

	if len(st.Result.Sources) > 0 {
		out += "\n" + labelStyle.Render("sources") + "\n"
		for i, s := range st.Result.Sources {
			out += fmt.Sprintf("  %d. %s\n", i+1, s)
		}
	}

	copyHint := "[c] copy"
	if a.copied {
		copyHint = pickedStyle.Render("copied!")
	}
	out += "\n" + labelStyle.Render(copyHint+"  [s] save .txt  [p] print/pdf  [enter] rewrite  [n] new  [q] quit")
	return out + a.renderStatus()
}

func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.statErr {
		return "\n" + errStyle.Render(a.status)
	}
	return "\n" + a.status
}
