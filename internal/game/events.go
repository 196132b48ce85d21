package game

type EventType int

const (
	EventStarted EventType = iota
	EventFlapped
	EventScored
	EventLevelUp
	EventGameOver
)

type Event struct {
	Type EventType
	X, Y float64
	Data int // Generic payload (score for Scored/GameOver, level for LevelUp).
}

type EventHandler func(Event)

// EventBus decouples the pure game core from audio, particles and camera
// shake: the session emits, the frame loop subscribes.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
