// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/mcusim/scenario"
	"github.com/ezrec/mcusim/sim"
)

func main() {
	var scen string
	var input string
	var output string
	var ticks int
	var boot bool
	var verbose bool

	flag.StringVar(&scen, "s", "", ".scn scenario file to apply")
	flag.StringVar(&input, "i", "-", "UART input")
	flag.StringVar(&output, "o", "-", "UART output")
	flag.IntVar(&ticks, "t", 0, "Tick limit (0 for scenario default)")
	flag.BoolVar(&boot, "b", false, "Print the boot trace")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	s := sim.NewSimulator()
	s.Verbose = verbose

	if input == "-" {
		s.Uart.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		s.Uart.Input = inf
	}

	if output == "-" {
		s.Uart.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		s.Uart.Output = ouf
	}

	scn := &scenario.Scenario{}

	if len(scen) != 0 {
		inf, err := os.Open(scen)
		if err != nil {
			log.Fatalf("%v: %v", scen, err)
		}
		defer inf.Close()

		parser := &scenario.Parser{Verbose: verbose}
		parser.PredefineAll(s.Defines())
		scn, err = parser.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", scen, err)
		}
	}

	scn.Apply(s)
	s.Reset()

	if boot {
		fmt.Fprint(os.Stderr, s.BootTrace())
	}

	limit := scn.Limit()
	if ticks != 0 {
		limit = ticks
	}

	_, err := s.Run(limit)
	if err != nil {
		var simErr *sim.ErrSim
		if errors.As(err, &simErr) && s.Snapshot != nil {
			fmt.Fprint(os.Stderr, s.Snapshot)
		}
		log.Fatal(err)
	}
}
