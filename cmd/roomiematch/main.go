package main

import (
	"log"

	"github.com/roomiematch/roomiematch/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ roomiematch failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ roomiematch exited with error: %v", err)
	}
}
