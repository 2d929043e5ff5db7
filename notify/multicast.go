package notify

// Subscription identifies a registered handler. The zero value is never issued.
type Subscription uint32

// Handler receives a broadcast event
type Handler[E any] func(E)

type registration[E any] struct {
	id      Subscription
	handler Handler[E]
}

// Multicast is a synchronous list of change listeners. The zero value is ready to use.
// It is not safe for concurrent use.
type Multicast[E any] struct {
	last          Subscription
	registrations []registration[E]
}

// Subscribe registers a handler and returns the handle used to remove it
func (m *Multicast[E]) Subscribe(h Handler[E]) Subscription {
	if h == nil {
		return 0
	}
	m.last++
	m.registrations = append(m.registrations, registration[E]{id: m.last, handler: h})
	return m.last
}

// Unsubscribe removes a handler, returning false if the handle is unknown
func (m *Multicast[E]) Unsubscribe(s Subscription) bool {
	for i, r := range m.registrations {
		if r.id == s {
			m.registrations = append(m.registrations[:i:i], m.registrations[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered handlers
func (m *Multicast[E]) Len() int {
	return len(m.registrations)
}

// Broadcast invokes every registered handler in registration order.
// A handler removed by an earlier handler is skipped; handlers added during
// the broadcast are first invoked by the next one.
func (m *Multicast[E]) Broadcast(e E) {
	if len(m.registrations) == 0 {
		return
	}
	ids := make([]Subscription, len(m.registrations))
	for i, r := range m.registrations {
		ids[i] = r.id
	}
	for _, id := range ids {
		if h, ok := m.lookup(id); ok {
			h(e)
		}
	}
}

func (m *Multicast[E]) lookup(s Subscription) (Handler[E], bool) {
	for _, r := range m.registrations {
		if r.id == s {
			return r.handler, true
		}
	}
	return nil, false
}

// Signal is a multicast without a payload
type Signal = Multicast[struct{}]

// Fire broadcasts on a signal
func Fire(s *Signal) {
	s.Broadcast(struct{}{})
}
