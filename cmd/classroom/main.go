package main

import (
	"log"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/app"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
