package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seabattle/internal/battle"
	"github.com/vovakirdan/seabattle/internal/session"
)

// Messages delivered from the match goroutine, in order.
type (
	eventMsg struct{ ev battle.Event }
	awaitMsg struct{} // the match is waiting for the player's target
	doneMsg  struct {
		res battle.Result
		err error
	}
)

// bridge connects a match running on its own goroutine to the Bubble Tea
// loop. The match only sees a TargetSource and an Observer; the model only
// sees messages carrying value snapshots.
type bridge struct {
	ctx     context.Context
	cancel  context.CancelFunc
	msgs    chan tea.Msg
	targets chan [2]int
	match   *battle.Match
}

var _ battle.TargetSource = (*bridge)(nil)

func newBridge(parent context.Context, setup session.Setup) (*bridge, error) {
	ctx, cancel := context.WithCancel(parent)
	b := &bridge{
		ctx:     ctx,
		cancel:  cancel,
		msgs:    make(chan tea.Msg),
		targets: make(chan [2]int, 1),
	}

	m, err := setup.NewMatch(session.Input{Source: b}, b.observe)
	if err != nil {
		cancel()
		return nil, err
	}
	b.match = m
	return b, nil
}

// NextTarget announces that input is needed and waits for it.
func (b *bridge) NextTarget(ctx context.Context) (int, int, error) {
	if err := b.send(ctx, awaitMsg{}); err != nil {
		return 0, 0, err
	}
	select {
	case t := <-b.targets:
		return t[0], t[1], nil
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	}
}

// submit hands a typed target to a waiting NextTarget.
func (b *bridge) submit(row, col int) {
	select {
	case b.targets <- [2]int{row, col}:
	default:
	}
}

func (b *bridge) observe(ev battle.Event) {
	//nolint:errcheck // a cancelled session drops the event
	b.send(b.ctx, eventMsg{ev: ev})
}

func (b *bridge) send(ctx context.Context, msg tea.Msg) error {
	select {
	case b.msgs <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run plays the match to the end, records it, and reports completion
// through the message channel so it arrives after every event.
func (b *bridge) run(setup session.Setup) tea.Cmd {
	return func() tea.Msg {
		res, err := b.match.Run(b.ctx)
		if err == nil {
			setup.Record(res)
		}
		//nolint:errcheck // nobody is listening once the session is cancelled
		b.send(b.ctx, doneMsg{res: res, err: err})
		return nil
	}
}

// wait returns a command that delivers the next message from the match.
func (b *bridge) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.msgs:
			return msg
		case <-b.ctx.Done():
			return nil
		}
	}
}

func (b *bridge) stop() {
	b.cancel()
}
