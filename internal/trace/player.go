package trace

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/gestured/gestured/internal/compositor"
	"github.com/gestured/gestured/internal/dispatch"
)

// Stats summarizes one replay.
type Stats struct {
	// Events is the total number of events applied.
	Events int

	// Consumed counts gesture updates and ends a cell consumed.
	Consumed int

	// Ignored counts gesture updates and ends no cell consumed.
	Ignored int

	// Unknown counts events the player could not map to a reducer.
	Unknown int
}

// Player replays traces against a dispatcher. Focus and cursor events
// drive the simulated compositor the dispatcher was wired to, so replayed
// gestures see the same window context they were recorded under.
type Player struct {
	disp *dispatch.Dispatcher
	sim  *compositor.Sim
	log  *zap.Logger
}

// NewPlayer creates a player for the given dispatcher. sim may be nil,
// in which case focus and cursor events are skipped.
func NewPlayer(disp *dispatch.Dispatcher, sim *compositor.Sim, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		disp: disp,
		sim:  sim,
		log:  log,
	}
}

// Play applies every event of the trace in order.
func (p *Player) Play(r *Reader) (Stats, error) {
	var st Stats
	for {
		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		st.Events++
		p.apply(ev, &st)
	}
}

// PlayFile opens, replays, and closes the trace at path.
func (p *Player) PlayFile(path string) (Stats, error) {
	r, err := Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer r.Close()

	st, err := p.Play(r)
	if err != nil {
		return st, err
	}

	p.log.Info("trace replayed",
		zap.String("path", path),
		zap.String("session", r.Session()),
		zap.Int("events", st.Events),
		zap.Int("consumed", st.Consumed),
		zap.Int("ignored", st.Ignored),
		zap.Int("unknown", st.Unknown))
	return st, nil
}

// apply maps one event onto the dispatcher or the simulated context.
func (p *Player) apply(ev Event, st *Stats) {
	switch ev.Ev {
	case EvFocus:
		if p.sim != nil {
			p.sim.SetFocusedApp(ev.App)
		}
	case EvCursor:
		if p.sim != nil {
			p.sim.SetUnderCursor(ev.Present)
		}
	case EvBegin:
		p.applyBegin(ev, st)
	case EvUpdate:
		p.applyUpdate(ev, st)
	case EvEnd:
		p.applyEnd(ev, st)
	default:
		p.unknown(ev, st)
	}
}

func (p *Player) applyBegin(ev Event, st *Stats) {
	switch {
	case ev.Kind == "swipe" && ev.Fingers == 3:
		p.disp.Swipe3Begin()
	case ev.Kind == "swipe" && ev.Fingers == 4:
		p.disp.Swipe4Begin()
	case ev.Kind == "pinch" && ev.Fingers == 3:
		p.disp.Pinch3Begin()
	case ev.Kind == "pinch" && ev.Fingers == 4:
		p.disp.Pinch4Begin()
	case ev.Kind == "hold" && ev.Fingers == 3:
		p.disp.Hold3Begin(ev.TS)
	case ev.Kind == "hold" && ev.Fingers == 4:
		p.disp.Hold4Begin(ev.TS)
	default:
		p.unknown(ev, st)
	}
}

func (p *Player) applyUpdate(ev Event, st *Stats) {
	var consumed bool
	switch {
	case ev.Kind == "swipe" && ev.Fingers == 3:
		consumed = p.disp.Swipe3Update(ev.Dx, ev.Dy)
	case ev.Kind == "swipe" && ev.Fingers == 4:
		consumed = p.disp.Swipe4Update(ev.Dx, ev.Dy)
	case ev.Kind == "pinch" && ev.Fingers == 3:
		consumed = p.disp.Pinch3Update(ev.Scale)
	case ev.Kind == "pinch" && ev.Fingers == 4:
		consumed = p.disp.Pinch4Update(ev.Scale)
	default:
		p.unknown(ev, st)
		return
	}
	if consumed {
		st.Consumed++
	} else {
		st.Ignored++
	}
}

func (p *Player) applyEnd(ev Event, st *Stats) {
	var consumed bool
	switch {
	case ev.Kind == "swipe" && ev.Fingers == 3:
		consumed = p.disp.Swipe3End(ev.Cancelled, ev.TS)
	case ev.Kind == "swipe" && ev.Fingers == 4:
		consumed = p.disp.Swipe4End(ev.Cancelled, ev.TS)
	case ev.Kind == "pinch" && ev.Fingers == 3:
		consumed = p.disp.Pinch3End(ev.Cancelled, ev.TS)
	case ev.Kind == "pinch" && ev.Fingers == 4:
		consumed = p.disp.Pinch4End(ev.Cancelled, ev.TS)
	case ev.Kind == "hold" && ev.Fingers == 3:
		consumed = p.disp.Hold3End(ev.Cancelled, ev.TS)
	case ev.Kind == "hold" && ev.Fingers == 4:
		consumed = p.disp.Hold4End(ev.Cancelled, ev.TS)
	default:
		p.unknown(ev, st)
		return
	}
	if consumed {
		st.Consumed++
	} else {
		st.Ignored++
	}
}

func (p *Player) unknown(ev Event, st *Stats) {
	st.Unknown++
	p.log.Warn("unmappable trace event",
		zap.String("ev", ev.Ev),
		zap.String("kind", ev.Kind),
		zap.Int("fingers", ev.Fingers))
}
