// This file is part of m6502core.
//
// m6502core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m6502core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m6502core.  If not, see <https://www.gnu.org/licenses/>.

// m6502mon loads a raw 6502 binary into a flat 64k memory and executes it.
//
// Usage:
//
//	m6502mon [RUN|STEP] [flags] file
//
// RUN mode executes until a BRK instruction, an error, or the maximum number
// of instructions. The CPU state is then dumped to stdout. The -until flag
// names a different stopping instruction.
//
// STEP mode executes one instruction per keypress and dumps the CPU state
// after each one. The outcome of branch instructions is reported. Other keys:
//
//	d	dump the CPU state
//	s	dump the stack page
//	v	show the interrupt vectors
//	g	write a graph of the CPU state to cpu.dot
//	q	quit
//
// The -prefs flag takes a prefs string selecting the hardware behaviour of
// the CPU in places where it differs from the reference behaviour. For
// example:
//
//	m6502mon RUN -prefs "cpu.compareoperand::true; cpu.jsraddress::true" prog.bin
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/m6502core/curated"
	"github.com/jetsetilly/m6502core/debugger/terminal"
	"github.com/jetsetilly/m6502core/hardware/cpu"
	"github.com/jetsetilly/m6502core/hardware/cpu/decoder"
	"github.com/jetsetilly/m6502core/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502core/hardware/memory"
	"github.com/jetsetilly/m6502core/logger"
	"github.com/jetsetilly/m6502core/modalflag"
	"github.com/jetsetilly/m6502core/prefs"
	"github.com/jetsetilly/m6502core/statsview"
)

// name of the file written by the graph key in STEP mode
const graphFile = "cpu.dot"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "STEP")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, os.Stdout)
	case "STEP":
		err = step(md, os.Stdout, openInput)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// use the controlling terminal if possible, otherwise stdin
func openInput() (terminal.Input, io.Writer) {
	rt, err := terminal.NewRawTerminal()
	if err != nil {
		logger.Log(logger.Allow, "m6502mon", err)
		return terminal.NewPlainTerminal(os.Stdin), os.Stdout
	}
	return rt, rt
}

// flags common to all modes
type options struct {
	origin *uint16
	max    *int
	prefs  *string
	log    *bool
	stats  *bool
	until  *string

	// the instruction that stops execution, parsed from until
	stop instructions.Operator
}

func addOptions(md *modalflag.Modes) *options {
	return &options{
		origin: md.AddAddress("origin", 0x0200, "load address and initial PC"),
		max:    md.AddInt("max", 1000000, "maximum number of instructions (0 for no limit)"),
		prefs:  md.AddString("prefs", "", "prefs string for CPU behaviour"),
		log:    md.AddBool("log", false, "echo log to stdout"),
		stats:  md.AddBool("statsview", false, fmt.Sprintf("run stats server (available=%v)", statsview.Available())),
		until:  md.AddString("until", "BRK", "stop after executing this instruction"),
	}
}

// create the CPU and load the program named by the single remaining argument.
// the returned function should be called when the CPU is no longer required
func (opts *options) setup(md *modalflag.Modes, output io.Writer) (*cpu.CPU, func(), error) {
	if *opts.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	var ok bool
	opts.stop, ok = instructions.ParseOperator(*opts.until)
	if !ok {
		return nil, func() {}, curated.Errorf("m6502mon: unknown instruction (%s)", *opts.until)
	}

	done := func() {}
	if *opts.stats {
		done = statsview.Launch(output, statsview.DefaultAddress)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, done, curated.Errorf("binary file required for %s mode", md)
	case 1:
	default:
		return nil, done, curated.Errorf("too many arguments for %s mode", md)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, done, curated.Errorf("m6502mon: %v", err)
	}

	mem := memory.NewFlat()
	err = mem.Load(*opts.origin, data)
	if err != nil {
		return nil, done, err
	}

	mc := cpu.NewCPU(mem)
	mc.LoadPC(*opts.origin)

	prefs.PushCommandLineStack(*opts.prefs)
	err = mc.Prefs.FromCommandLine()
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, done, err
	}
	if unused != "" {
		return nil, done, curated.Errorf(cpu.UnknownPreference, unused)
	}

	logger.Logf(logger.Allow, "m6502mon", "loaded %d bytes at %#04x", len(data), *opts.origin)

	return mc, done, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, done, err := opts.setup(md, output)
	defer done()
	if err != nil {
		return err
	}

	n := 0
	for *opts.max == 0 || n < *opts.max {
		defn, err := mc.Step()
		if err != nil {
			return err
		}
		n++
		if defn.Operator == opts.stop {
			break // for loop
		}
	}

	fmt.Fprintf(output, "%d instructions executed\n", n)
	mc.Dump(output)

	return nil
}

func step(md *modalflag.Modes, output io.Writer, open func() (terminal.Input, io.Writer)) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, done, err := opts.setup(md, output)
	defer done()
	if err != nil {
		return err
	}

	in, w := open()
	defer in.CleanUp()

	n := 0
	for *opts.max == 0 || n < *opts.max {
		fmt.Fprint(w, prompt(mc))

		k, err := in.ReadKey()
		if err != nil {
			fmt.Fprint(w, "\n")
			if err == io.EOF || curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return err
		}
		if in.IsInteractive() {
			fmt.Fprint(w, "\n")
		}

		switch k {
		case 'q', 'Q':
			return nil
		case 'd', 'D':
			mc.Dump(w)
		case 's', 'S':
			if mem, ok := mc.Memory().(*memory.Flat); ok {
				fmt.Fprintln(w, mem.PageString(uint8(memory.StackPage>>8)))
			}
		case 'v', 'V':
			if mem, ok := mc.Memory().(*memory.Flat); ok {
				fmt.Fprintf(w, "NMI: %#04x RESET: %#04x IRQ/BRK: %#04x\n",
					mem.Read16(memory.NMI), mem.Read16(memory.Reset), mem.Read16(memory.IRQ))
			}
		case 'g', 'G':
			if err := writeGraph(mc); err != nil {
				return err
			}
			fmt.Fprintf(w, "graph written to %s\n", graphFile)
		default:
			pc := mc.PC.Address()
			defn, err := mc.Step()
			if err != nil {
				return err
			}
			n++
			fmt.Fprintln(w, defn)
			if defn.IsBranch() {
				if mc.PC.Address() == pc+uint16(defn.Bytes) {
					fmt.Fprintln(w, "branch not taken")
				} else {
					fmt.Fprintln(w, "branch taken")
				}
			}
			mc.Dump(w)
			if defn.Operator == opts.stop {
				fmt.Fprintf(w, "stopped at %s\n", defn.Operator)
				return nil
			}
		}
	}

	return nil
}

// the prompt shows the next instruction
func prompt(mc *cpu.CPU) terminal.Prompt {
	p := terminal.Prompt{PC: mc.PC.Address()}
	if defn, ok := decoder.Lookup(mc.Read(mc.PC.Address())); ok {
		p.Content = fmt.Sprintf("%s %s", defn.Operator, defn.AddressingMode)
	} else {
		p.Content = "???"
	}
	return p
}

func writeGraph(mc *cpu.CPU) error {
	f, err := os.Create(graphFile)
	if err != nil {
		return curated.Errorf("m6502mon: %v", err)
	}
	defer f.Close()
	mc.Graph(f)
	return nil
}
