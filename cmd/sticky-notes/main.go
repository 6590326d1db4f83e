package main

import (
	"log"

	"sticky-notes/internal/app"
)

func main() {
	application, err := app.NewApplication(app.DefaultConfig())
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
