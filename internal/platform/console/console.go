// Package console plays a match over plain line-based text, for pipes and
// terminals where the full-screen UI is not wanted.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/vovakirdan/seabattle/internal/battle"
	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/session"
)

// Prompt reads targets typed as "row col", asking again on malformed input.
// Lines are read on a separate goroutine so a cancelled context releases a
// caller blocked at the prompt.
type Prompt struct {
	in    *bufio.Scanner
	out   io.Writer
	once  sync.Once
	lines chan scanned
}

type scanned struct {
	text string
	err  error
}

var _ battle.TargetSource = (*Prompt)(nil)

// NewPrompt creates a prompt reading from r and writing questions to w.
func NewPrompt(r io.Reader, w io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(r), out: w, lines: make(chan scanned)}
}

// scan feeds lines to NextTarget and finishes with the read error, or
// io.EOF when input ends.
func (p *Prompt) scan() {
	defer close(p.lines)
	for p.in.Scan() {
		p.lines <- scanned{text: p.in.Text()}
	}
	err := p.in.Err()
	if err == nil {
		err = io.EOF
	}
	p.lines <- scanned{err: err}
}

// NextTarget blocks until a well-formed line is read or ctx is done. It
// returns io.EOF when input ends.
func (p *Prompt) NextTarget(ctx context.Context) (int, int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		p.once.Do(func() { go p.scan() })

		fmt.Fprint(p.out, "Your shot (row col): ")
		var line scanned
		select {
		case <-ctx.Done():
			return 0, 0, ctx.Err()
		case l, ok := <-p.lines:
			if !ok {
				return 0, 0, io.EOF
			}
			line = l
		}
		if line.err != nil {
			return 0, 0, line.err
		}

		row, col, err := core.ParseTarget(line.text)
		if err != nil {
			fmt.Fprintf(p.out, "  %v\n", err)
			continue
		}
		return row, col, nil
	}
}

// Printer writes match events as text.
type Printer struct {
	out    io.Writer
	style  [2]core.BoardStyle
	names  [2]string
	grids  [2]battle.Snapshot
	boards bool
}

// NewPrinter creates a printer. With boards set, both boards are drawn
// after every shot; otherwise only the commentary is written.
func NewPrinter(w io.Writer, g core.Glyphs, boards bool) *Printer {
	return &Printer{
		out:    w,
		style:  [2]core.BoardStyle{{Glyphs: g}, {Glyphs: g}},
		names:  [2]string{"A", "B"},
		boards: boards,
	}
}

// SetNames sets the player names used in titles and commentary.
func (p *Printer) SetNames(a, b string) {
	p.names = [2]string{a, b}
	p.style[battle.SideA].Title = a + "'s fleet"
	p.style[battle.SideB].Title = b + "'s fleet"
}

// Observe is a battle.Observer.
func (p *Printer) Observe(ev battle.Event) {
	switch e := ev.(type) {
	case battle.SetupEvent:
		p.grids = e.Grids
		p.printBoards()
	case battle.ShotEvent:
		p.grids[e.Side.Other()] = e.Grid
	case battle.RejectedEvent:
		// The interactive player is told directly; automated retries stay quiet.
		return
	case battle.FinishedEvent:
		p.grids = e.Grids
		p.grids[battle.SideA].Reveal = true
		p.grids[battle.SideB].Reveal = true
	}

	if line := session.Narrate(ev, p.names); line != "" {
		fmt.Fprintln(p.out, line)
	}

	switch ev.(type) {
	case battle.ShotEvent, battle.FinishedEvent:
		p.printBoards()
	}
}

func (p *Printer) printBoards() {
	if !p.boards {
		return
	}
	s := core.BoardsScreen(p.grids[battle.SideA], p.grids[battle.SideB], p.style[battle.SideA], p.style[battle.SideB])
	fmt.Fprintf(p.out, "\n%s\n\n", s.String())
}

// Play runs one match on the console. Interactive sides read from r; all
// output goes to w.
func Play(ctx context.Context, s session.Setup, r io.Reader, w io.Writer) (battle.Result, error) {
	pr := NewPrinter(w, s.Glyphs(), true)
	in := session.Input{
		Source: NewPrompt(r, w),
		OnReject: func(_ battle.Coord, err error) {
			fmt.Fprintf(w, "  %s\n", session.RejectReason(err))
		},
	}

	m, err := s.NewMatch(in, pr.Observe)
	if err != nil {
		return battle.Result{}, err
	}
	pr.SetNames(m.Combatant(battle.SideA).Name(), m.Combatant(battle.SideB).Name())

	res, err := m.Run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return res, session.ErrQuit
	}
	if err != nil {
		return res, err
	}
	s.Record(res)
	return res, nil
}
