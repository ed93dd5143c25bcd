package components

import "sync"

// Event names a class of host events a view can listen to.
type Event string

const (
	EventResize Event = "resize"
	EventScroll Event = "scroll"
)

// Disposer releases one subscription. Calling it more than once is a no-op.
type Disposer func()

type subscription struct {
	id    uint64
	owner string
}

// Registry records which views currently listen to which host events. The
// root model only forwards an event to the owners returned by Subscribers,
// so a view that has released its subscription stops receiving it.
type Registry struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Event][]subscription
}

func NewRegistry() *Registry {
	return &Registry{subs: map[Event][]subscription{}}
}

func (r *Registry) Subscribe(event Event, owner string) Disposer {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.subs[event] = append(r.subs[event], subscription{id: id, owner: owner})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(event, id) })
	}
}

func (r *Registry) remove(event Event, id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.subs[event]
	for i, s := range list {
		if s.id == id {
			r.subs[event] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Subscribers returns the distinct owners listening to event, in
// subscription order.
func (r *Registry) Subscribers(event Event) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	var owners []string
	for _, s := range r.subs[event] {
		if !seen[s.owner] {
			seen[s.owner] = true
			owners = append(owners, s.owner)
		}
	}
	return owners
}

func (r *Registry) Listening(event Event, owner string) bool {
	for _, o := range r.Subscribers(event) {
		if o == owner {
			return true
		}
	}
	return false
}

// Len is the number of live subscriptions across all events.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, list := range r.subs {
		n += len(list)
	}
	return n
}
