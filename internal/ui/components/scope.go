package components

// Scope collects what a mounted view acquired and releases it on unmount,
// last acquired first.
type Scope struct {
	releases []func()
	closed   bool
}

func NewScope() *Scope {
	return &Scope{}
}

func (s *Scope) Add(release func()) {
	if s.closed {
		release()
		return
	}
	s.releases = append(s.releases, release)
}

// Listen subscribes owner to each event and ties the subscriptions to the
// scope.
func (s *Scope) Listen(reg *Registry, owner string, events ...Event) {
	for _, ev := range events {
		dispose := reg.Subscribe(ev, owner)
		s.Add(func() { dispose() })
	}
}

func (s *Scope) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

func (s *Scope) Closed() bool {
	return s == nil || s.closed
}
