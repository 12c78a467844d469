// Command monitor is an interactive single-step debugger for the 8080
// core: it loads a flat binary at a chosen origin and lets the user step
// through it one instruction at a time, watching registers, flags and a
// disassembly window update live.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/urfave/cli.v2"

	"i8080/cpu"
	"i8080/mem"
)

type model struct {
	c      *cpu.CPU
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.c.PC
			m.c.Step()
		}
	}
	return m, nil
}

// renderPage renders 16 bytes of memory as a line, highlighting PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.c.Bus.ReadByte(start + i)
		if start+i == m.c.PC {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "addr | "
	for b := range 16 {
		header += fmt.Sprintf("  %01X  ", b)
	}
	lines := []string{header}
	base := m.c.PC &^ 0x0F
	for p := -2; p <= 2; p++ {
		lines = append(lines, m.renderPage(base+uint16(p*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	f := m.c.Flags
	flagBits := []bool{f.S, f.Z, f.A, f.P, f.C}
	flagNames := "S Z A P C"
	var marks string
	for _, set := range flagBits {
		if set {
			marks += "1 "
		} else {
			marks += "0 "
		}
	}
	return fmt.Sprintf(`
PC: %04X (%04X)
SP: %04X
 A: %02X  B: %02X  C: %02X
 D: %02X  E: %02X  H: %02X  L: %02X
%s
%s
`,
		m.c.PC, m.prevPC, m.c.SP,
		m.c.Reg.A, m.c.Reg.B, m.c.Reg.C,
		m.c.Reg.D, m.c.Reg.E, m.c.Reg.H, m.c.Reg.L,
		flagNames, marks,
	)
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		cpu.Disassemble(m.c.Bus, m.c.PC),
		"",
		spew.Sdump(m.c.Reg),
	)
}

func main() {
	app := &cli.App{
		Name:  "monitor",
		Usage: "interactive single-step debugger for the 8080 core",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "origin",
				Aliases: []string{"o"},
				Usage:   "load address, hex, e.g. 0x100",
				Value:   "0x100",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				cli.ShowAppHelp(c)
				return cli.Exit("missing binary argument", 1)
			}

			origin, err := strconv.ParseUint(strings.TrimPrefix(c.String("origin"), "0x"), 16, 16)
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid origin: %v", err), 1)
			}

			bus := &mem.Bus{}
			if err := bus.LoadImage(c.Args().First(), uint16(origin)); err != nil {
				return err
			}

			cp := cpu.New(bus)
			cp.PC = uint16(origin)

			p := tea.NewProgram(model{c: cp})
			final, err := p.Run()
			if err != nil {
				return err
			}
			if x, ok := final.(model); ok && x.err != nil {
				fmt.Println("Error:", x.err)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
