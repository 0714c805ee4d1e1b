package main

import (
	"log"

	"github.com/satchelapp/satchel/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ satchel failed to start: %v", err)
	}
}
