// Package debugger replaces console/bus.go's fmt.Scanf-driven BIOS REPL
// with an interactive bubbletea TUI, grounded on hejops-gone/cpu/debugger.go's
// single-step model/page-table view.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/8bitcore/gintendo/clock"
)

// Inspectable is the slice of driver state the debugger needs without
// importing cpu6502/ppu/bus directly, so this package stays a pure
// presentation layer over whatever Driver exposes.
type Inspectable interface {
	Step() uint8
	CPUString() string
	Peek(addr uint16) uint8
	PC() uint16
}

type breakpoints map[uint16]struct{}

type model struct {
	d      Inspectable
	breaks breakpoints

	memLow, memHigh uint16
	lastStepCycles  uint8
	quitting        bool
}

// New builds the debugger model over a running clock.Driver.
func New(d *clock.Driver) tea.Model {
	return model{
		d:      driverAdapter{d},
		breaks: make(breakpoints),
		memHigh: 0x00FF,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "s":
			m.lastStepCycles = m.d.Step()
		case "r":
			for {
				m.lastStepCycles = m.d.Step()
				if _, hit := m.breaks[m.d.PC()]; hit {
					break
				}
			}
		case "c":
			m.breaks = make(breakpoints)
		case "b":
			m.breaks[m.d.PC()] = struct{}{}
		}
	}
	return m, nil
}

func (m model) memoryDump() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%04x | ", m.memLow))
	x := 0
	for addr := uint32(m.memLow); addr <= uint32(m.memHigh); addr++ {
		sb.WriteString(fmt.Sprintf("%02x ", m.d.Peek(uint16(addr))))
		x++
		if x%16 == 0 && addr != uint32(m.memHigh) {
			sb.WriteString(fmt.Sprintf("\n%04x | ", addr+1))
		}
	}
	return sb.String()
}

func (m model) breakpointList() string {
	if len(m.breaks) == 0 {
		return "(none)"
	}
	var parts []string
	for addr := range m.breaks {
		parts = append(parts, fmt.Sprintf("%04x", addr))
	}
	return strings.Join(parts, " ")
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	status := fmt.Sprintf(
		"%s\nlast step: %d cycles\nbreakpoints: %s\n\n[s]tep [r]un-to-breakpoint [b]reak [c]lear-breaks [q]uit",
		m.d.CPUString(), m.lastStepCycles, m.breakpointList(),
	)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.memoryDump(),
		"",
		status,
	)
}

// Dump writes a go-spew dump of an arbitrary value to stdout, for ad-hoc
// inspection outside the TUI. The gintendo command does not call it.
func Dump(v interface{}) {
	spew.Dump(v)
}

type driverAdapter struct{ d *clock.Driver }

func (a driverAdapter) Step() uint8         { return a.d.Step() }
func (a driverAdapter) CPUString() string   { return a.d.CPU.String() }
func (a driverAdapter) Peek(addr uint16) uint8 { return a.d.Bus.Read(addr) }
func (a driverAdapter) PC() uint16          { return a.d.CPU.PC }
