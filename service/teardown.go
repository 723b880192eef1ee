package service

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Manager coordinates graceful shutdown: it cancels the shared context on SIGINT/SIGTERM, waits
// for registered goroutines and then runs teardown functions in registration order.
type Manager struct {
	termChan  chan os.Signal
	doneChan  chan struct{}
	waitGroup *sync.WaitGroup
	context   context.Context
	cancel    context.CancelFunc
	mu        sync.Mutex
	teardowns []func()
}

var (
	manager *Manager
	once    sync.Once
)

// GetTeardownManager returns the process wide teardown manager
func GetTeardownManager() *Manager {
	once.Do(func() {
		manager = newManager()
		signal.Notify(manager.termChan, os.Interrupt, syscall.SIGTERM)
	})
	return manager
}

func newManager() *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		termChan:  make(chan os.Signal, 1),
		doneChan:  make(chan struct{}),
		waitGroup: &sync.WaitGroup{},
		context:   ctx,
		cancel:    cancel,
	}
}

func (m *Manager) TeardownFunc(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardowns = append(m.teardowns, f)
}

func (m *Manager) Context() context.Context {
	return m.context
}

func (m *Manager) WaitGroup() *sync.WaitGroup {
	return m.waitGroup
}

// Wait blocks until a termination signal arrives, then shuts everything down
func (m *Manager) Wait() {
	<-m.termChan
	m.cancel()
	m.waitGroup.Wait()

	m.mu.Lock()
	teardowns := m.teardowns
	m.mu.Unlock()
	for _, f := range teardowns {
		f()
	}
	close(m.doneChan)
}
