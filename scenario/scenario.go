// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package scenario parses text files that configure a simulation run.
//
// A scenario is line oriented: '#' starts a comment, '.equ NAME value'
// defines an equate, and 'key = value' assigns a simulation parameter.
// Values may be decimal, hex (0x...), an equate name, or a compile-time
// $(...) expression evaluated with Starlark against the equates and the
// simulator's defines.
package scenario

import (
	"bufio"
	"io"
	"iter"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mcusim/sim"
)

// Scenario holds the parameters of a simulation run. A zero field means
// "unset"; the component default applies.
type Scenario struct {
	TimerPeriod   int // Ticks between timer interrupts.
	WatchdogLimit int // Watchdog expiry limit in ticks.
	RunLimit      int // Total tick budget for the run.
	MainStall     int // Ticks the main loop stalls after boot.
}

const (
	// RUN_DEFAULT_LIMIT is the tick budget when run.limit is unset.
	RUN_DEFAULT_LIMIT = 4096
)

// Parser is a single pass parser for scenario files.
type Parser struct {
	Verbose bool              // If set, verbosely logs the parser actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (p *Parser) Predefine(equ string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{equ: value}
	} else {
		p.predefine[equ] = value
	}
}

// PredefineAll predefines every key/value pair of an iterator, such as
// a Simulator's Defines().
func (p *Parser) PredefineAll(defines iter.Seq2[string, string]) {
	for key, value := range defines {
		p.Predefine(key, value)
	}
}

// valueOf returns the value of a simple word.
func (p *Parser) valueOf(word string) (value uint32, err error) {
	equ, ok := p.Equate[word]
	if ok {
		word = equ
	} else {
		pre, ok := p.predefine[word]
		if ok {
			word = pre
		}
	}

	v64, err := strconv.ParseUint(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	value = uint32(v64)

	return
}

// parenEval does parse-time $(...) evaluations
func (p *Parser) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range p.predefine {
		var value32 uint32
		value32, err = p.valueOf(str)
		if err != nil {
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	for key, str := range p.Equate {
		var value32 uint32
		value32, err = p.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	err = nil
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

var parenRe = regexp.MustCompile(`\$\(([^)]*)\)`)
var assignRe = regexp.MustCompile(`^([a-z][a-z0-9_.]*)\s*=\s*(\S+)$`)

// parseLine parses a single non-comment line into the scenario.
func (p *Parser) parseLine(scen *Scenario, line string) (err error) {
	// Do $() evaluations
	var evalErr error
	line = parenRe.ReplaceAllStringFunc(line, func(match string) string {
		expr := match[2 : len(match)-1]
		value, err := p.parenEval(expr)
		if err != nil {
			evalErr = err
			return match
		}
		return strconv.FormatUint(uint64(value), 10)
	})
	if evalErr != nil {
		err = evalErr
		return
	}

	words := strings.Fields(line)

	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, dup := p.Equate[words[1]]
		if dup {
			err = ErrEquateDuplicate
			return
		}
		p.Equate[words[1]] = words[2]
		return
	}

	match := assignRe.FindStringSubmatch(strings.Join(words, ""))
	if match == nil {
		err = ErrAssignSyntax
		return
	}
	key := match[1]
	value, err := p.valueOf(match[2])
	if err != nil {
		return
	}

	switch key {
	case "timer.period":
		scen.TimerPeriod = int(value)
	case "watchdog.limit":
		scen.WatchdogLimit = int(value)
	case "run.limit":
		scen.RunLimit = int(value)
	case "main.stall":
		scen.MainStall = int(value)
	default:
		err = ErrKeyUnknown(key)
		return
	}

	if p.Verbose {
		log.Printf("scenario: %v = %v", key, value)
	}

	return
}

// Parse reads a scenario from a reader.
func (p *Parser) Parse(in io.Reader) (scen *Scenario, err error) {
	if p.Equate == nil {
		p.Equate = map[string]string{}
	}

	scen = &Scenario{}

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		// Strip comments.
		if n := strings.IndexByte(line, '#'); n >= 0 {
			line = line[:n]
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		err = p.parseLine(scen, line)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			scen = nil
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		scen = nil
	}

	return
}

// Apply configures a simulator from the scenario's set parameters.
func (scen *Scenario) Apply(s *sim.Simulator) {
	if scen.TimerPeriod != 0 {
		s.Timer.Period = scen.TimerPeriod
	}
	if scen.WatchdogLimit != 0 {
		s.Watchdog.Limit = scen.WatchdogLimit
	}
	if scen.MainStall != 0 {
		s.MainStall = scen.MainStall
	}
}

// Limit returns the run tick budget, applying the default when unset.
func (scen *Scenario) Limit() int {
	if scen.RunLimit == 0 {
		return RUN_DEFAULT_LIMIT
	}

	return scen.RunLimit
}
