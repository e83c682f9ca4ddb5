package cart

import "sync"

// Registry keeps one engine per PDV session.
type Registry struct {
	mu      sync.Mutex
	sink    OrderSink
	engines map[string]*Engine
	opts    []func(*Engine)
}

func NewRegistry(sink OrderSink, opts ...func(*Engine)) *Registry {
	return &Registry{
		sink:    sink,
		engines: make(map[string]*Engine),
		opts:    opts,
	}
}

// Session returns the engine of the session, creating an empty one on first use.
func (r *Registry) Session(id string) *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.engines[id]
	if !ok {
		e = NewEngine(r.sink)
		for _, opt := range r.opts {
			opt(e)
		}
		r.engines[id] = e
	}
	return e
}

// Lookup returns the engine of an open session without creating one.
func (r *Registry) Lookup(id string) (*Engine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.engines[id]
	return e, ok
}

// Snapshot returns the cart of the session, or an empty cart when the
// session was never opened.
func (r *Registry) Snapshot(id string) Cart {
	if e, ok := r.Lookup(id); ok {
		return e.Snapshot()
	}
	return NewEngine(r.sink).Snapshot()
}

// Close drops the session and its cart.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.engines, id)
}

// Len is the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}
