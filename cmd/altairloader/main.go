// Command altairloader runs a flat binary image at address 0x0000, the
// convention used by Altair 8800 software such as 4K BASIC, with the
// 88-SIO status/data ports pre-seeded the way those ROMs expect to find
// them at boot.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v2"

	"i8080/cpu"
	"i8080/mem"
)

func main() {
	app := &cli.App{
		Name:  "altairloader",
		Usage: "run an Altair-style binary image against the 8080 core",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "sio-status",
				Usage: "port-in latch value for the 88-SIO status port (device 0)",
				Value: 0x80,
			},
			&cli.IntFlag{
				Name:  "sio-data",
				Usage: "port-in latch value for the 88-SIO data port (device 255)",
				Value: 0x00,
			},
			&cli.BoolFlag{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "print a debug trace after every instruction",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				cli.ShowAppHelp(c)
				return cli.Exit("missing image argument", 1)
			}
			return run(c.Args().First(), byte(c.Int("sio-status")), byte(c.Int("sio-data")), c.Bool("trace"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, sioStatus byte, sioData byte, trace bool) error {
	bus := &mem.Bus{}
	if err := bus.LoadImage(path, 0x0000); err != nil {
		return err
	}

	bus.SetPortIn(0, sioStatus)
	bus.SetPortIn(255, sioData)

	c := cpu.New(bus)
	c.Debug = trace

	for {
		c.Step()
		if trace {
			fmt.Fprintln(os.Stderr, c.Trace)
		}
		if c.PC == 0x0000 {
			break
		}
	}
	return nil
}
