package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/game"
	"github.com/lixenwraith/townhold/input"
	"github.com/lixenwraith/townhold/render"
)

// eventSink receives the events of each step
type eventSink interface {
	HandleEvents(events []event.GameEvent)
}

type loop struct {
	screen   tcell.Screen
	match    *game.Match
	keys     *input.KeyTable
	renderer *render.Renderer
	sink     eventSink

	frameDelay time.Duration
	linger     time.Duration
}

// run blocks on input, one step per key, until quit or game over
func (l *loop) run() {
	l.renderer.Draw(l.match.Snapshot())

	for {
		var cmd input.Command
		switch ev := l.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return
		case *tcell.EventResize:
			l.screen.Sync()
			l.renderer.Draw(l.match.Snapshot())
			continue
		case *tcell.EventKey:
			cmd = l.keys.Translate(ev)
		default:
			continue
		}

		events := l.match.Step(cmd)
		if l.match.Quit() {
			return
		}
		l.sink.HandleEvents(events)
		l.renderer.Draw(l.match.Snapshot())

		if l.match.Over() {
			time.Sleep(l.linger)
			return
		}
		time.Sleep(l.frameDelay)
	}
}
