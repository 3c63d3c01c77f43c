// Package pathctx implements the per-layer cursor and path-token
// accumulator described by spec.md's PathContext component: it tracks the
// drawing cursor, the current subpath's start point (the target of Z/z),
// the last control point (for S/T smooth variants), and emits textual SVG
// path commands.
package pathctx

import (
	"strings"

	"github.com/svgdsl/svgdsl/pathlang/format"
	"github.com/svgdsl/svgdsl/pathlang/geom"
	"github.com/svgdsl/svgdsl/pathlang/pathblock"
)

// PathContext is the cursor and token accumulator for a single layer, or
// for a PathBlock capture in progress.
type PathContext struct {
	Position     geom.Point
	SubpathStart geom.Point
	LastControl  *geom.Point

	tokens []string

	// InPathBlock is true while this context is recording a PathBlock
	// body: it forbids absolute commands, layer definitions, apply
	// blocks, text statements, and nested path blocks (enforced by
	// package eval, which consults this flag).
	InPathBlock bool

	// recording, when true, additionally accumulates a CommandRecord
	// history for pathblock.Build to consume.
	recording bool
	history   []pathblock.CommandRecord
}

// New creates a PathContext with the cursor at the origin.
func New() *PathContext {
	return &PathContext{}
}

// NewRecording creates a PathContext used to capture a PathBlock body: the
// cursor starts at the origin, InPathBlock forbids absolute commands, and
// every emitted command is recorded for later geometry analysis.
func NewRecording() *PathContext {
	return &PathContext{InPathBlock: true, recording: true}
}

// Tokens returns the emitted command tokens.
func (pc *PathContext) Tokens() []string { return append([]string(nil), pc.tokens...) }

// History returns the recorded command history (only populated for a
// recording context).
func (pc *PathContext) History() []pathblock.CommandRecord {
	return append([]pathblock.CommandRecord(nil), pc.history...)
}

// Data joins the emitted tokens with single spaces, per spec.md's
// invariant that a PathLayer's data is exactly this concatenation.
func (pc *PathContext) Data() string { return strings.Join(pc.tokens, " ") }

// IsAbsolute reports whether letter is an uppercase (absolute) command.
func IsAbsolute(letter string) bool {
	return len(letter) == 1 && letter[0] >= 'A' && letter[0] <= 'Z'
}

// Emit appends "<letter> <args...>" to the token stream, updates the
// cursor, subpath start, and last control point as required by the
// command, and (if recording) appends a CommandRecord. args are already
// evaluated numeric arguments; flagIndices names the zero-based positions
// within args that are SVG arc flags and must always render as bare 0/1
// regardless of numeric formatting options.
func (pc *PathContext) Emit(letter string, args []float64, opt format.Options, flagIndices map[int]bool) {
	start := pc.Position
	pc.applyCommand(letter, args)
	end := pc.Position

	parts := make([]string, 0, len(args)+1)
	parts = append(parts, letter)
	for i, a := range args {
		if flagIndices[i] {
			parts = append(parts, format.Flag(a))
		} else {
			parts = append(parts, format.Number(a, opt))
		}
	}
	pc.tokens = append(pc.tokens, strings.Join(parts, " "))

	if pc.recording {
		pc.history = append(pc.history, pathblock.CommandRecord{
			Letter: letter, Args: append([]float64(nil), args...), Start: start, End: end,
		})
	}
}

// Absorb appends tokens verbatim (as already rendered at capture time) and
// replays history's relative commands to advance the cursor, subpath
// start, and last control point by the same deltas — used by
// PathBlock.draw() to splice a captured relative sub-program into the
// active context at its current position.
func (pc *PathContext) Absorb(tokens []string, history []pathblock.CommandRecord) {
	pc.tokens = append(pc.tokens, tokens...)
	for _, rec := range history {
		pc.applyCommand(rec.Letter, rec.Args)
	}
}

// applyCommand advances the cursor per the SVG path command semantics for
// letter, given its already-evaluated numeric args.
func (pc *PathContext) applyCommand(letter string, args []float64) {
	rel := !IsAbsolute(letter)
	cur := pc.Position

	abs := func(x, y float64) geom.Point {
		if rel {
			return geom.Point{X: cur.X + x, Y: cur.Y + y}
		}
		return geom.Point{X: x, Y: y}
	}

	switch strings.ToLower(letter) {
	case "m":
		p := abs(args[0], args[1])
		pc.Position = p
		pc.SubpathStart = p
		pc.LastControl = nil
	case "l":
		pc.Position = abs(args[0], args[1])
		pc.LastControl = nil
	case "h":
		if rel {
			pc.Position = geom.Point{X: cur.X + args[0], Y: cur.Y}
		} else {
			pc.Position = geom.Point{X: args[0], Y: cur.Y}
		}
		pc.LastControl = nil
	case "v":
		if rel {
			pc.Position = geom.Point{X: cur.X, Y: cur.Y + args[0]}
		} else {
			pc.Position = geom.Point{X: cur.X, Y: args[0]}
		}
		pc.LastControl = nil
	case "c":
		c2 := abs(args[2], args[3])
		end := abs(args[4], args[5])
		pc.Position = end
		ctl := c2
		pc.LastControl = &ctl
	case "s":
		c2 := abs(args[0], args[1])
		end := abs(args[2], args[3])
		pc.Position = end
		ctl := c2
		pc.LastControl = &ctl
	case "q":
		c1 := abs(args[0], args[1])
		end := abs(args[2], args[3])
		pc.Position = end
		ctl := c1
		pc.LastControl = &ctl
	case "t":
		end := abs(args[0], args[1])
		pc.Position = end
		pc.LastControl = nil
	case "a":
		end := abs(args[5], args[6])
		pc.Position = end
		pc.LastControl = nil
	case "z":
		pc.Position = pc.SubpathStart
		pc.LastControl = nil
	}
}

// ReflectedControl returns the reflection of the last control point
// across the current cursor, for S/T smooth variants, or the cursor
// itself if there is no previous control point.
func (pc *PathContext) ReflectedControl() geom.Point {
	if pc.LastControl == nil {
		return pc.Position
	}
	return pc.Position.Scale(2).Sub(*pc.LastControl)
}
