package collective

import (
	"sync"

	"github.com/pkg/errors"
)

type kind uint8

const (
	kindReduce kind = iota + 1
	kindExchange
	kindGather
	kindSync
)

func (k kind) String() string {
	switch k {
	case kindReduce:
		return "reduce"
	case kindExchange:
		return "exchange"
	case kindGather:
		return "gather"
	case kindSync:
		return "sync"
	}
	return "unknown"
}

type payload struct {
	op      Op
	indices []int64
	values  []float64
}

// mailbox holds collective payloads pushed by peers until the local rank
// collects them. Peers run ahead by at most one collective, so payloads
// for a sequence number may arrive before the local rank waits on it.
type mailbox struct {
	mu      sync.Mutex
	cond    *sync.Cond
	slots   map[uint64]*slot
	failure error
}

type slot struct {
	kind kind
	from map[int]payload
}

func newMailbox() *mailbox {
	m := &mailbox{slots: make(map[uint64]*slot)}
	m.cond = sync.NewCond(&m.mu)
	return m
}

func (m *mailbox) deposit(seq uint64, k kind, from int, p payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return m.failure
	}
	s := m.slots[seq]
	if s == nil {
		s = &slot{kind: k, from: make(map[int]payload)}
		m.slots[seq] = s
	}
	if s.kind != k {
		return m.failLocked(errors.Errorf("collective: rank %d sent %s for sequence %d, expected %s", from, k, seq, s.kind))
	}
	if _, dup := s.from[from]; dup {
		return m.failLocked(errors.Errorf("collective: duplicate %s from rank %d for sequence %d", k, from, seq))
	}
	s.from[from] = p
	m.cond.Broadcast()
	return nil
}

// wait blocks until need peers have deposited for seq, then consumes and
// returns the payloads keyed by sender rank.
func (m *mailbox) wait(seq uint64, k kind, need int) (map[int]payload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		if m.failure != nil {
			return nil, m.failure
		}
		if s := m.slots[seq]; s != nil {
			if s.kind != k {
				return nil, m.failLocked(errors.Errorf("collective: sequence %d carries %s, expected %s", seq, s.kind, k))
			}
			if len(s.from) >= need {
				delete(m.slots, seq)
				return s.from, nil
			}
		} else if need == 0 {
			return map[int]payload{}, nil
		}
		m.cond.Wait()
	}
}

// fail poisons the mailbox: every pending and future deposit or wait
// observes err, so no rank parks on a barrier that can never complete.
func (m *mailbox) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failLocked(err)
}

func (m *mailbox) failLocked(err error) error {
	if m.failure == nil {
		m.failure = err
	}
	m.cond.Broadcast()
	return m.failure
}
