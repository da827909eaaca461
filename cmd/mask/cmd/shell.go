package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/confio/mask/contract"
	"github.com/confio/mask/runtime"
	"github.com/confio/mask/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type shellOp struct {
	name   string
	desc   string
	fields []string
	run    func(m *shellModel, values []string) (string, error)
}

var shellOps = []shellOp{
	{
		name:   "init",
		desc:   "initialize, signer becomes owner",
		fields: []string{"from"},
		run: func(m *shellModel, values []string) (string, error) {
			info, err := signerInfo(values[0])
			if err != nil {
				return "", err
			}
			if _, err := m.rt.Instantiate(callEnv(), info, []byte(`{}`)); err != nil {
				return "", err
			}
			return "initialized, owner is " + values[0], nil
		},
	},
	{
		name:   "forward",
		desc:   "forward an opaque JSON message",
		fields: []string{"from", "msg (JSON)"},
		run: func(m *shellModel, values []string) (string, error) {
			info, err := signerInfo(values[0])
			if err != nil {
				return "", err
			}
			if !json.Valid([]byte(values[1])) {
				return "", fmt.Errorf("msg must be valid JSON")
			}
			payload, err := json.Marshal(contract.ExecuteMsg{
				Forward: &contract.ForwardMsg{Msg: types.NewCosmosMsg([]byte(values[1]))},
			})
			if err != nil {
				return "", err
			}
			res, err := m.rt.Execute(callEnv(), info, payload)
			if err != nil {
				return "", err
			}
			return "forwarded: " + string(res.Messages[0].Raw()), nil
		},
	},
	{
		name:   "transfer",
		desc:   "transfer ownership",
		fields: []string{"from", "new owner"},
		run: func(m *shellModel, values []string) (string, error) {
			info, err := signerInfo(values[0])
			if err != nil {
				return "", err
			}
			payload, err := json.Marshal(contract.ExecuteMsg{
				TransferOwnership: &contract.TransferMsg{Owner: types.HumanAddr(values[1])},
			})
			if err != nil {
				return "", err
			}
			if _, err := m.rt.Execute(callEnv(), info, payload); err != nil {
				return "", err
			}
			return "ownership transferred to " + values[1], nil
		},
	},
	{
		name: "query owner",
		desc: "show the current owner",
		run: func(m *shellModel, values []string) (string, error) {
			data, err := m.rt.Query(callEnv(), []byte(`{"owner":{}}`))
			if err != nil {
				return "", err
			}
			var resp contract.OwnerResponse
			if err := json.Unmarshal(data, &resp); err != nil {
				return "", err
			}
			return "owner: " + string(resp.Owner), nil
		},
	},
}

type shellState int

const (
	stateSelectOp shellState = iota
	stateInputFields
	stateShowResult
)

type shellModel struct {
	rt       *runtime.Runtime
	err      error
	result   string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    shellState
}

type opResultMsg struct {
	err    error
	result string
}

func newShellModel(rt *runtime.Runtime) *shellModel {
	return &shellModel{rt: rt, state: stateSelectOp}
}

func (m *shellModel) Init() tea.Cmd {
	return nil
}

func (m *shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputFields {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(shellOps)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.runOp
				}
				m.state = stateInputFields

			case stateInputFields:
				return m, m.runOp

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputFields && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputFields:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case opResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputFields {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *shellModel) prepareInputs() {
	op := shellOps[m.selected]
	m.inputs = make([]textinput.Model, len(op.fields))
	for i, field := range op.fields {
		ti := textinput.New()
		ti.Prompt = field + ": "
		ti.Width = 60
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *shellModel) runOp() tea.Msg {
	op := shellOps[m.selected]
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = strings.TrimSpace(input.Value())
	}

	result, err := op.run(m, values)
	if err != nil {
		return opResultMsg{err: err}
	}
	return opResultMsg{result: result}
}

func (m *shellModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mask shell"))
	b.WriteString(" ")
	b.WriteString(helpStyle.Render(storePath))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range shellOps {
			line := opStyle.Render(op.name) + "  " + helpStyle.Render(op.desc)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + op.name))
				b.WriteString("  " + helpStyle.Render(op.desc))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateInputFields:
		op := shellOps[m.selected]
		b.WriteString(fmt.Sprintf("Running %s\n\n", opStyle.Render(op.name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		op := shellOps[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive contract shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("shell requires a terminal")
		}

		rt, closeStore, err := openRuntime()
		if err != nil {
			return err
		}
		defer closeStore()

		p := tea.NewProgram(newShellModel(rt), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
