package punch

import (
	"sync"
)

// employeeLocker serializes punch submission per employee. Submissions for
// different employees proceed in parallel; two near-simultaneous punches for
// the same employee would otherwise both read the same last entry and both
// pass validation.
type employeeLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEmployeeLocker() *employeeLocker {
	return &employeeLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *employeeLocker) forEmployee(employeeID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[employeeID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[employeeID] = m
	}
	return m
}
