package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea model backing Debug: a single-step inspector over
// a running CPU, showing code ROM pages, register state, and the opcode
// entry about to execute (spec.md §9: "an external collaborator may drive
// Step interactively").
type model struct {
	cpu     *CPU
	offset  uint16
	prevPC  uint16
	lastErr error
}

// Init performs no command; the CPU is already loaded by Debug before the
// program starts.
func (m model) Init() tea.Cmd { return nil }

// Update advances the CPU by one instruction on space/j, quits on q.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.State.PC
			if _, err := m.cpu.Step(); err != nil {
				m.lastErr = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		b := m.cpu.State.Code.Read(start + uint16(i))
		if start+uint16(i) == m.cpu.State.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	psw := m.cpu.State.PSW()
	var flags string
	for _, bit := range []byte{PSW_C, PSW_AC, PSW_F0, PSW_RS1, PSW_RS0, PSW_OV, PSW_P} {
		if psw&bit != 0 {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
ACC: %02x
 B : %02x
 SP: %02x
DPTR: %04x
C AC F0 RS1 RS0 OV P
`,
		m.cpu.State.PC, m.prevPC,
		m.cpu.State.ACC(), m.cpu.State.B(), m.cpu.State.SP(), m.cpu.State.DPTR(),
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}

	base := m.cpu.State.PC &^ 0x0F
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(uint16(int32(base)+int32(i)*16)))
	}
	return strings.Join(lines, "\n")
}

// View renders the page table, register status, and a spew dump of the
// name of the dispatch entry about to run.
func (m model) View() string {
	next := dispatchTable[m.cpu.State.Code.Read(m.cpu.State.PC)]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(next.name),
	)
}

// Debug loads program into code ROM at offset and starts an interactive
// step-by-step TUI driven by Step.
func (c *CPU) Debug(program []byte, offset uint16) error {
	c.State.Code.Load(offset, program)
	c.State.PC = offset

	result, err := tea.NewProgram(model{cpu: c, offset: offset}).Run()
	if err != nil {
		return err
	}
	if m, ok := result.(model); ok && m.lastErr != nil {
		return m.lastErr
	}
	return nil
}
