// Package annotate implements the trace-producing "annotated output"
// compilation mode from spec.md section 4.11: a thin pass layered over
// pathlang/eval via its Hooks field, rather than a second evaluator.
package annotate

import (
	"fmt"
	"strings"

	"github.com/svgdsl/svgdsl/pathlang/eval"
	"github.com/svgdsl/svgdsl/pathlang/parser"
)

// forTraceThreshold is the iteration count above which the middle of a
// loop's trace is elided, keeping the first three and last three
// iterations, per spec.md section 4.11.
const forTraceThreshold = 16

// loopState tracks one active for-loop's elision window. index is the
// 0-based iteration currently executing; total is its known iteration
// count, set once at BeforeFor.
type loopState struct {
	total int
	index int
}

// suppressed reports whether the current iteration's trace (its
// "//--- iteration N" marker and any emitted lines) should be dropped
// because it falls in the elided middle section.
func (s *loopState) suppressed() bool {
	if s.total <= forTraceThreshold {
		return false
	}
	return s.index >= 3 && s.index < s.total-3
}

// Run parses and evaluates source, returning the interleaved trace of
// `//--- ...` comments and emitted path/shape tokens described in
// spec.md section 4.11.
func Run(source string, opts eval.Options) (string, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return "", err
	}

	e := eval.New(source, opts)
	var b strings.Builder
	var loops []*loopState

	// suppressedNow reports whether output should be dropped right now,
	// i.e. any loop on the active stack is mid-elision -- a suppressed
	// outer loop silences everything nested inside it too.
	suppressedNow := func() bool {
		for _, l := range loops {
			if l.suppressed() {
				return true
			}
		}
		return false
	}

	e.Hooks.BeforeFor = func(label string, line int, total int) {
		if suppressedNow() {
			loops = append(loops, &loopState{total: total})
			return
		}
		b.WriteString(fmt.Sprintf("//--- %s from line %d\n", label, line))
		loops = append(loops, &loopState{total: total})
	}
	e.Hooks.BeforeIteration = func(index int) {
		if len(loops) == 0 {
			return
		}
		cur := loops[len(loops)-1]
		cur.index = index
		if suppressedNow() {
			if cur.total > forTraceThreshold && index == 3 {
				b.WriteString(fmt.Sprintf("//--- ... %d more iterations ...\n", cur.total-6))
			}
			return
		}
		b.WriteString(fmt.Sprintf("//--- iteration %d\n", index))
	}
	e.Hooks.AfterForEnd = func() {
		if len(loops) > 0 {
			loops = loops[:len(loops)-1]
		}
	}
	e.Hooks.BeforeCall = func(label string, line int, traced bool) {
		if !traced || suppressedNow() {
			return
		}
		b.WriteString(fmt.Sprintf("//--- %s called from line %d\n", label, line))
	}
	e.Hooks.AfterEmit = func(line string) {
		if suppressedNow() {
			return
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if err := e.Run(program); err != nil {
		return "", err
	}

	return b.String(), nil
}
