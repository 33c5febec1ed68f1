// Package inflight orders overlapping store actions.
//
// Every action that writes a store field takes a ticket for that field. When the
// call returns, the result is applied only if no newer ticket was issued for the
// same field in the meantime, so a slow early response can never overwrite a
// fast later one. In-flight counts are kept per action so loading flags stay up
// while any call of that action is outstanding.
//
// A Sequencer is not safe for concurrent use on its own; stores call it while
// holding their mutex.
package inflight

// Ticket identifies one started action.
type Ticket struct {
	action string
	field  string
	seq    uint64
}

type Sequencer struct {
	next     uint64
	latest   map[string]uint64
	inFlight map[string]int
}

// Begin registers a started action writing field.
func (s *Sequencer) Begin(action, field string) Ticket {
	if s.latest == nil {
		s.latest = make(map[string]uint64)
		s.inFlight = make(map[string]int)
	}
	s.next++
	s.latest[field] = s.next
	s.inFlight[action]++
	return Ticket{action: action, field: field, seq: s.next}
}

// Finish marks the action as done and reports whether its result is still the
// newest for its field.
func (s *Sequencer) Finish(t Ticket) bool {
	if s.inFlight[t.action] > 0 {
		s.inFlight[t.action]--
	}
	return s.latest[t.field] == t.seq
}

// Busy reports whether any of the given actions is still in flight.
func (s *Sequencer) Busy(actions ...string) bool {
	for _, a := range actions {
		if s.inFlight[a] > 0 {
			return true
		}
	}
	return false
}
