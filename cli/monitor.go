package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/jogd/ipc"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func renderJogState(out ipc.JogState, valid bool) string {
	if !valid {
		return docStyle.Render("waiting for jogd...\n")
	}
	return docStyle.Render(fmt.Sprintf(
		"time: %.3f\nposition: %f\nvelocity: %f\nacceleration: %f\njerk: %f\nmoving: %t\ntarget: %f\ntarget velocity: %f\nreplans: %d\nloop jitter: %f",
		out.Time,
		out.State.Position,
		out.State.Velocity,
		out.State.Acceleration,
		out.Jerk,
		out.Moving,
		out.TargetPosition,
		out.TargetVelocity,
		out.Replans,
		out.LoopJitter,
	) + "\n")
}

type monitorModel struct {
	sub   *ipc.Subscriber[ipc.JogState]
	out   ipc.JogState
	valid bool
}

func (m monitorModel) Init() tea.Cmd {
	return tickEvery()
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case TickMsg:
		out, success := m.sub.Read()
		if success {
			m.out = out
			m.valid = true
		}
		return m, tickEvery()
	}
	return m, nil
}

func (m monitorModel) View() string {
	return renderJogState(m.out, m.valid)
}

func monitor() {
	sub := ipc.NewSubscriber[ipc.JogState](ipc.JogOut, true)
	defer sub.Sub.Msgq.Close()

	p := tea.NewProgram(monitorModel{sub: &sub}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
