// Package workload is a thin external adapter that parses the
// whitespace-delimited textual workload format into sim.Process values
// and resource capacities. It has no involvement in scheduling or
// resource-allocation semantics; those live entirely in the sim
// package.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emreebayir/cpu-scheduling-simulator/sim"
)

// Load reads the workload grammar from r:
//
//	M
//	cap_1 cap_2 ... cap_M
//	<pid> <arrival> <priority>
//	  <op> <arg> [<arg2>]
//	  ...
//	  END
//	...
//	END
//
// where <op> is CPU <duration>, IO <duration>, REQ<id> <count>, or
// REL<id> <count>. Unknown instruction tokens are skipped; a process
// block missing fields simply gets a shorter program. Returns the
// loaded processes in file order and the resource capacities indexed
// 1..M.
func Load(r io.Reader) ([]*sim.Process, []int, error) {
	toks := newTokenizer(r)

	m, err := toks.nextInt()
	if err != nil {
		return nil, nil, fmt.Errorf("reading resource count: %w", err)
	}

	capacities := make([]int, m)
	for i := 0; i < m; i++ {
		c, err := toks.nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("reading capacity %d: %w", i+1, err)
		}
		capacities[i] = c
	}

	var processes []*sim.Process
	for {
		pid, ok := toks.next()
		if !ok || pid == "END" {
			break
		}
		arrival, err := toks.nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("reading arrival time for %s: %w", pid, err)
		}
		priority, err := toks.nextInt()
		if err != nil {
			return nil, nil, fmt.Errorf("reading priority for %s: %w", pid, err)
		}

		var program []sim.Instruction
		for {
			op, ok := toks.next()
			if !ok || op == "END" {
				break
			}
			switch {
			case op == "CPU":
				d, err := toks.nextInt()
				if err != nil {
					break
				}
				program = append(program, sim.CPUInstr(d))
			case op == "IO":
				d, err := toks.nextInt()
				if err != nil {
					break
				}
				program = append(program, sim.IOInstr(d))
			case strings.HasPrefix(op, "REQ"):
				id, err := strconv.Atoi(op[len("REQ"):])
				if err != nil {
					continue
				}
				count, err := toks.nextInt()
				if err != nil {
					break
				}
				program = append(program, sim.ReqInstr(id, count))
			case strings.HasPrefix(op, "REL"):
				id, err := strconv.Atoi(op[len("REL"):])
				if err != nil {
					continue
				}
				count, err := toks.nextInt()
				if err != nil {
					break
				}
				program = append(program, sim.RelInstr(id, count))
			default:
				// Unrecognized instruction token: skip it.
			}
		}
		processes = append(processes, sim.NewProcess(pid, arrival, priority, program))
	}

	return processes, capacities, nil
}

// tokenizer yields whitespace-delimited tokens, mirroring C++'s
// istream::operator>> used by the original parser.
type tokenizer struct {
	scanner *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &tokenizer{scanner: s}
}

func (t *tokenizer) next() (string, bool) {
	if !t.scanner.Scan() {
		return "", false
	}
	return t.scanner.Text(), true
}

func (t *tokenizer) nextInt() (int, error) {
	tok, ok := t.next()
	if !ok {
		return 0, fmt.Errorf("unexpected end of input")
	}
	return strconv.Atoi(tok)
}
