package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/jogd/ipc"
	"pfeifer.dev/jogd/motion"
)

type mainState int

const (
	showMenu mainState = iota
	showJogInput
	showLimitsInput
	showWatch
)

type item struct {
	title, desc string
	state       mainState
	command     ipc.CommandType
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

type uiModel struct {
	list      list.Model
	state     mainState
	textInput textinput.Model
	fields    []string
	values    []float64
	index     int
	pub       *ipc.Publisher[ipc.JogCommand]
	sub       *ipc.Subscriber[ipc.JogState]
	out       ipc.JogState
	outValid  bool
	status    string
}

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Jog", desc: "Move the axis to a target position", state: showJogInput},
		item{title: "Stop", desc: "Brake the axis to rest", state: showMenu, command: ipc.CommandStop},
		item{title: "Limits", desc: "Change the velocity, acceleration and jerk limits", state: showLimitsInput},
		item{title: "Watch", desc: "Watch the live axis state", state: showWatch},
		item{title: "Reload Settings", desc: "Reload jogd settings from disk", state: showMenu, command: ipc.CommandReloadSettings},
		item{title: "Save Settings", desc: "Persist the active jogd settings", state: showMenu, command: ipc.CommandSaveSettings},
	}

	listDelegate := list.NewDefaultDelegate()
	pub := ipc.NewPublisher[ipc.JogCommand](ipc.JogIn)
	sub := ipc.NewSubscriber[ipc.JogState](ipc.JogOut, true)
	ti := textinput.New()
	ti.Focus()
	m := uiModel{list: list.New(items, listDelegate, 0, 0), textInput: ti, pub: &pub, sub: &sub}
	m.list.Title = "Jogd Actions"
	return m
}

func (m *uiModel) beginInput(fields []string) {
	m.fields = fields
	m.values = make([]float64, 0, len(fields))
	m.index = 0
	m.textInput.SetValue("")
}

func (m *uiModel) send(cmd ipc.JogCommand) {
	err := m.pub.Send(cmd)
	if err != nil {
		m.status = fmt.Sprintf("send failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("sent %s", cmd.Type)
}

func (m *uiModel) finishInput() {
	switch m.state {
	case showJogInput:
		m.send(ipc.JogCommand{
			Type:           ipc.CommandMove,
			TargetPosition: m.values[0],
			TargetVelocity: m.values[1],
		})
	case showLimitsInput:
		m.send(ipc.JogCommand{
			Type: ipc.CommandSetLimits,
			Limits: &motion.Limits{
				MaxVelocity:     m.values[0],
				MaxAcceleration: m.values[1],
				MaxJerk:         m.values[2],
			},
		})
	}
	m.state = showMenu
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case showMenu:
			if msg.Type == tea.KeyEnter && m.list.FilterState() != list.Filtering {
				it := m.list.SelectedItem().(item)
				if it.command != "" {
					m.send(ipc.JogCommand{Type: it.command})
					return m, nil
				}
				m.state = it.state
				switch m.state {
				case showJogInput:
					m.beginInput([]string{"target position (m)", "target velocity (m/s)"})
				case showLimitsInput:
					m.beginInput([]string{"max velocity (m/s)", "max acceleration (m/s^2)", "max jerk (m/s^3)"})
				}
				return m, nil
			}
		case showJogInput, showLimitsInput:
			if msg.Type == tea.KeyEsc {
				m.state = showMenu
				return m, nil
			}
			if msg.Type == tea.KeyEnter {
				val, err := strconv.ParseFloat(m.textInput.Value(), 64)
				if err != nil {
					m.status = "not a number"
					return m, nil
				}
				m.values = append(m.values, val)
				m.index += 1
				m.textInput.SetValue("")
				if m.index == len(m.fields) {
					m.finishInput()
				}
				return m, nil
			}
		case showWatch:
			if msg.String() == "q" || msg.Type == tea.KeyEsc {
				m.state = showMenu
				return m, nil
			}
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case TickMsg:
		out, success := m.sub.Read()
		if success {
			m.out = out
			m.outValid = true
		}
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showJogInput, showLimitsInput:
		m.textInput, cmd = m.textInput.Update(msg)
	case showWatch:
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showJogInput, showLimitsInput:
		return docStyle.Render(fmt.Sprintf("%s\n\n%s\n\n%s", m.fields[m.index], m.textInput.View(), m.status))
	case showWatch:
		return renderJogState(m.out, m.outValid)
	}
	view := m.list.View()
	if m.status != "" {
		view += "\n" + m.status
	}
	return docStyle.Render(view)
}

func interactive() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
