package prism

const (
	LIGHT_ENTER EventType = iota
	LIGHT_STAY
	LIGHT_EXIT
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

type pairKey struct {
	light  *Light
	volume *Volume
}

// LightEnterEvent is sent the first Cull a light reaches a volume.
type LightEnterEvent struct {
	Light  *Light
	Volume *Volume
}

func (e LightEnterEvent) Type() EventType { return LIGHT_ENTER }

// LightStayEvent is sent on every following Cull where the light still reaches the volume.
type LightStayEvent struct {
	Light  *Light
	Volume *Volume
}

func (e LightStayEvent) Type() EventType { return LIGHT_STAY }

// LightExitEvent is sent the first Cull the light no longer reaches the volume.
type LightExitEvent struct {
	Light  *Light
	Volume *Volume
}

func (e LightExitEvent) Type() EventType { return LIGHT_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events tracks which lights reach which volumes between two Cull calls
// and dispatches the differences to the listeners.
type Events struct {
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// init makes the zero value usable.
func (e *Events) init() {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	if e.previousActivePairs == nil {
		e.previousActivePairs = make(map[pairKey]bool)
	}
	if e.currentActivePairs == nil {
		e.currentActivePairs = make(map[pairKey]bool)
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.init()
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordLighting stores the pairs found by one Cull.
func (e *Events) recordLighting(results []LightResult) {
	e.init()
	for _, result := range results {
		for _, volume := range result.Volumes {
			e.currentActivePairs[pairKey{light: result.Light, volume: volume}] = true
		}
	}
}

// processLightingEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processLightingEvents() {
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			e.buffer = append(e.buffer, LightStayEvent{Light: pair.light, Volume: pair.volume})
		} else {
			e.buffer = append(e.buffer, LightEnterEvent{Light: pair.light, Volume: pair.volume})
		}
	}

	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			e.buffer = append(e.buffer, LightExitEvent{Light: pair.light, Volume: pair.volume})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// forgetLight drops the tracked pairs of a removed light, without Exit events.
func (e *Events) forgetLight(light *Light) {
	for pair := range e.previousActivePairs {
		if pair.light == light {
			delete(e.previousActivePairs, pair)
		}
	}
}

// forgetVolume drops the tracked pairs of a removed volume, without Exit events.
func (e *Events) forgetVolume(volume *Volume) {
	for pair := range e.previousActivePairs {
		if pair.volume == volume {
			delete(e.previousActivePairs, pair)
		}
	}
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processLightingEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
