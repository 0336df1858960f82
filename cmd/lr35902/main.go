package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thelolagemann/lr35902/internal/machine"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
	"github.com/thelolagemann/lr35902/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The program image to load (.gb, .bin, .gz, .zip or .7z)")
	origin := flag.String("origin", "0x0000", "The address to load the image at")
	steps := flag.Int("steps", 1, "The maximum number of instructions to execute")
	trace := flag.Bool("trace", false, "Log every instruction before it executes")
	serialOut := flag.Bool("serial", false, "Copy serial port output to stdout")
	stateIn := flag.String("load-state", "", "The state file to restore before running")
	stateOut := flag.String("state", "", "The state file to write after running")
	flag.Parse()

	var logger log.Logger
	if *trace {
		logger = log.NewDebug(os.Stderr)
	} else {
		logger = log.New()
	}

	opts := []machine.Opt{machine.WithLogger(logger)}
	if *trace {
		opts = append(opts, machine.WithTrace())
	}
	if *serialOut {
		opts = append(opts, machine.WithSerial(os.Stdout))
	}
	m := machine.New(opts...)

	if *stateIn != "" {
		s, err := types.StateFromFile(*stateIn)
		if err != nil {
			logger.Fatalf("reading state: %v", err)
		}
		if err := m.Restore(s); err != nil {
			logger.Fatalf("restoring %s: %v", *stateIn, err)
		}
	}

	if *romFile != "" {
		address, err := utils.ParseUint16(*origin)
		if err != nil {
			logger.Fatalf("invalid origin %q: %v", *origin, err)
		}
		rom, err := utils.LoadFile(*romFile)
		if err != nil {
			logger.Fatalf("loading %s: %v", *romFile, err)
		}
		if err := m.Load(address, rom); err != nil {
			logger.Fatalf("loading %s: %v", *romFile, err)
		}
	}

	n, err := m.Run(*steps)
	logger.Infof("executed %d instructions", n)

	c := m.CPU
	fmt.Printf("PC:%04X SP:%04X A:%02X F:%s B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X digest:%016x\n",
		c.PC, c.SP, c.A, c.Flags, c.B, c.C, c.D, c.E, c.H, c.L, m.Digest())

	if *stateOut != "" {
		if err := m.Save().SaveToFile(*stateOut); err != nil {
			logger.Fatalf("writing state: %v", err)
		}
	}

	// an unknown opcode has already been logged by the machine
	if err != nil {
		os.Exit(1)
	}
}
