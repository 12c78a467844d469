// Command cpmloader runs a flat CP/M .COM binary against the 8080 core,
// emulating just enough of the BDOS surface (console output) for
// straight-line test programs and the classic 8080 diagnostic suites to
// run to completion outside of a real operating system.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"

	"i8080/cpu"
	"i8080/mem"
)

const (
	loadOrigin     = 0x0100
	bdosVector     = 0x0005
	defaultStackHi = 0xFF00
)

func main() {
	app := &cli.App{
		Name:  "cpmloader",
		Usage: "run a CP/M .COM binary against the 8080 core",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "print a debug trace after every instruction",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				cli.ShowAppHelp(c)
				return cli.Exit("missing binary argument", 1)
			}
			return run(c.Args().First(), c.Bool("trace"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, trace bool) error {
	bus := &mem.Bus{}
	if err := bus.LoadImage(path, loadOrigin); err != nil {
		return err
	}

	// A bare RET at the BDOS entry point catches every CALL 0x0005 a CP/M
	// program makes; bdosCall below inspects register C to decide which
	// of the two functions exercised by the diagnostic suites to emulate.
	bus.WriteByte(bdosVector, 0xC9)

	// Some programs read the stack pointer back from 0x0006-0x0007 rather
	// than trusting a preset SP.
	bus.WriteWord(0x0006, defaultStackHi)

	c := cpu.New(bus)
	c.SP = defaultStackHi
	c.PC = loadOrigin
	c.Debug = trace

	for {
		c.Step()
		if trace {
			fmt.Fprintln(os.Stderr, c.Trace)
		}
		if c.PC == bdosVector {
			bdosCall(c)
		}
		if c.PC == 0x0000 {
			break
		}
	}
	return nil
}

// bdosCall emulates BDOS function 2 (print the character in E) and
// function 9 (print a $-terminated string at DE), the only two calls the
// standard 8080 test ROMs rely on for output.
func bdosCall(c *cpu.CPU) {
	switch c.Reg.C {
	case 2:
		fmt.Print(string(rune(c.Reg.E)))
	case 9:
		addr := c.Reg.DE()
		for {
			b := c.Bus.ReadByte(addr)
			if b == '$' {
				break
			}
			fmt.Print(string(rune(b)))
			addr++
		}
	}
}
