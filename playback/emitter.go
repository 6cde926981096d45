package playback

import "sync"

type listener struct {
	id uint64
	fn func()
}

// Emitter is a registration-ordered event dispatcher shared by Media and Host
// implementations. The zero value is ready to use.
type Emitter[E comparable] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[E][]listener
}

// Listen registers fn for event. The returned function removes exactly this
// registration and is safe to call more than once.
func (e *Emitter[E]) Listen(event E, fn func()) (unlisten func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.listeners == nil {
		e.listeners = make(map[E][]listener)
	}

	e.nextID++
	id := e.nextID
	e.listeners[event] = append(e.listeners[event], listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(event, id) })
	}
}

func (e *Emitter[E]) remove(event E, id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ls := e.listeners[event]
	for i, l := range ls {
		if l.id == id {
			e.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Emit calls every listener of event in registration order.
// Listeners may register or unregister while being called.
func (e *Emitter[E]) Emit(event E) {
	e.mu.Lock()
	ls := make([]listener, len(e.listeners[event]))
	copy(ls, e.listeners[event])
	e.mu.Unlock()

	for _, l := range ls {
		l.fn()
	}
}

// Count reports how many listeners are registered for event.
func (e *Emitter[E]) Count(event E) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[event])
}
