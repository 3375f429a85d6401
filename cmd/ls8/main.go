// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

func main() {
	var assemble bool
	var verbose bool

	flag.BoolVar(&assemble, "a", false, "Program is assembly source")
	flag.BoolVar(&verbose, "v", false, "Verbose mode (trace every instruction)")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [-a] [-v] PROGRAM", os.Args[0])
	}

	path := flag.Arg(0)

	var prog *cpu.Program
	var err error
	if assemble {
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, errors.Join(cpu.ErrProgramNotFound, err))
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
	} else {
		prog, err = cpu.LoadFile(path)
	}
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Tape.Output = os.Stdout

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	err = emu.Run(0)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}
