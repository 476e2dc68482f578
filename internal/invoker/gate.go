package invoker

import (
	"sync"
	"time"
)

// Decision is the gate's verdict for one trigger.
type Decision int

const (
	// Dispatch means the invocation may fire now.
	Dispatch Decision = iota
	// Armed means the trigger was intercepted: nothing was dispatched and the
	// next confirmed trigger will fire.
	Armed
)

// Gate enforces two-step confirmation for sensitive endpoints. Each
// descriptor moves Idle -> Armed -> (dispatch) -> Idle; a sensitive
// invocation never fires on its first trigger. Armed state expires so a
// forgotten confirmation cannot linger.
type Gate struct {
	mu    sync.Mutex
	armed map[string]time.Time
	ttl   time.Duration
}

// NewGate creates a gate whose armed state expires after ttl.
func NewGate(ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Gate{armed: make(map[string]time.Time), ttl: ttl}
}

// Trigger records one invocation attempt for a sensitive descriptor. The
// first trigger arms the descriptor; a confirmed trigger while armed
// dispatches and resets to idle. An unconfirmed trigger refreshes the armed
// window instead of firing.
func (g *Gate) Trigger(descriptorID string, confirm bool) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	armedAt, isArmed := g.armed[descriptorID]
	if isArmed && time.Since(armedAt) > g.ttl {
		isArmed = false
	}

	if isArmed && confirm {
		delete(g.armed, descriptorID)
		return Dispatch
	}

	g.armed[descriptorID] = time.Now()
	return Armed
}

// Reset clears any armed state for a descriptor, e.g. when the operator
// navigates away.
func (g *Gate) Reset(descriptorID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.armed, descriptorID)
}
