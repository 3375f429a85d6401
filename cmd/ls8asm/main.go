// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
)

func main() {
	var output string
	var verbose bool

	flag.StringVar(&output, "o", "-", "Output .ls8 file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [-o OUTPUT] [-v] SOURCE", os.Args[0])
	}

	source := flag.Arg(0)

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	_, err = prog.WriteTo(ouf)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
