package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"sticky-notes/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable
type Func func()

func (f Func) Shutdown() {
	f()
}

// Manager shuts registered components down once, in reverse registration
// order, on the calling goroutine.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	mu         sync.Mutex
	once       sync.Once
	done       chan struct{}
	signals    chan os.Signal
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		done:       make(chan struct{}),
	}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen waits for SIGINT or SIGTERM and passes onSignal to dispatch, which
// is expected to run it on the UI thread.
func (m *Manager) Listen(dispatch func(func()), onSignal func()) {
	m.signals = make(chan os.Signal, 1)
	signal.Notify(m.signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-m.signals:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			dispatch(onSignal)
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.once.Do(m.shutdown)
}

func (m *Manager) shutdown() {
	m.mu.Lock()
	components := make([]Shutdownable, len(m.components))
	copy(components, m.components)
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	for i := len(components) - 1; i >= 0; i-- {
		components[i].Shutdown()
	}

	if m.signals != nil {
		signal.Stop(m.signals)
	}
	close(m.done)

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
