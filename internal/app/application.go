package app

import (
	"sticky-notes/internal/gui"
	"sticky-notes/internal/logger"
	"sticky-notes/internal/models"
	"sticky-notes/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	shell     *gui.Shell
	logger    logger.Logger
	lifecycle *Lifecycle
}

func NewApplication(config Config) (*Application, error) {
	return newApplication(app.NewWithID(AppID), config)
}

func newApplication(fyneApp fyne.App, config Config) (*Application, error) {
	log := logger.New(config.Log)

	window := fyneApp.NewWindow(config.Title)
	window.SetPadded(false)
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"notes_file":    config.NotesFile,
		"window_config": config.WindowConfigFile,
	})

	notes := models.NewNoteRepository(config.NotesFile)
	windowConf := models.NewWindowConfigStore(config.WindowConfigFile)
	shell := gui.NewShell(fyneApp, window, notes, windowConf, log)

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register(shell)
	lifecycle := NewLifecycle(fyneApp, shutdownMgr, log)

	application := &Application{
		fyneApp:   fyneApp,
		window:    window,
		shell:     shell,
		logger:    log,
		lifecycle: lifecycle,
	}
	application.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.shell.SetQuitHandler(a.lifecycle.Quit)

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Quit()
	})
}

func (a *Application) Shell() *gui.Shell {
	return a.shell
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Run() error {
	a.shell.Start()
	a.lifecycle.ListenForSignals()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
