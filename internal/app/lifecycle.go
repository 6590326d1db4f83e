package app

import (
	"sticky-notes/internal/logger"
	"sticky-notes/internal/shutdown"

	"fyne.io/fyne/v2"
)

type Lifecycle struct {
	fyneApp     fyne.App
	shutdownMgr *shutdown.Manager
	logger      logger.Logger
	isShutdown  bool
}

func NewLifecycle(fyneApp fyne.App, mgr *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp:     fyneApp,
		shutdownMgr: mgr,
		logger:      log,
	}
}

// ListenForSignals routes SIGINT/SIGTERM through Quit on the UI thread
func (l *Lifecycle) ListenForSignals() {
	l.shutdownMgr.Listen(fyne.Do, l.Quit)
}

// Quit runs the shutdown sequence once and stops the event loop
func (l *Lifecycle) Quit() {
	if l.isShutdown {
		return
	}
	l.isShutdown = true

	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
	l.shutdownMgr.Shutdown()
	l.fyneApp.Quit()
	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) IsShutdown() bool {
	return l.isShutdown
}
