package publish

import (
	"log/slog"

	"github.com/vk/gridcalc/internal/cellid"
	"github.com/vk/gridcalc/internal/sheet"
)

// Event is the name of the event emitted for every stored cell.
const Event = "cell"

// Emitter sends one event with its payload.
type Emitter interface {
	Emit(event string, payload map[string]any)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(event string, payload map[string]any)

func (f EmitterFunc) Emit(event string, payload map[string]any) { f(event, payload) }

// Publisher turns stored cells into events.
type Publisher struct {
	emitter Emitter
	logger  *slog.Logger
	close   func()
	sent    int
}

// New creates a publisher that emits through e.
func New(e Emitter, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{emitter: e, logger: logger}
}

// Observe emits c as a cell event. Its signature matches sheet.Observer.
func (p *Publisher) Observe(pos cellid.Position, c sheet.Cell) {
	payload := Payload(pos, c)
	p.logger.Debug("Emitting event", "event", Event, "cell", payload["cell"])
	p.emitter.Emit(Event, payload)
	p.sent++
}

// Sent returns the number of events emitted so far.
func (p *Publisher) Sent() int {
	return p.sent
}

// Close releases the underlying connection, if any.
func (p *Publisher) Close() {
	if p.close != nil {
		p.close()
		p.close = nil
	}
}

// Payload builds the event data for a cell. `value` is present when the cell
// has a numeric value; `error` is present when a formula failed.
func Payload(pos cellid.Position, c sheet.Cell) map[string]any {
	payload := map[string]any{
		"cell":    pos.String(),
		"entry":   c.Entry(),
		"display": c.String(),
	}
	if v, ok := c.Value(); ok {
		payload["value"] = v
	}
	if c.Kind == sheet.KindFormula && c.Result.Err != nil {
		payload["error"] = c.Result.Err.Error()
	}
	return payload
}
