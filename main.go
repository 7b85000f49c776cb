package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	c "gdpeda/core"
	m "gdpeda/models"
)

func main() {
	// initialize context and signal handler, listen for interrupt and term signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// load in environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	settings, err := m.SettingsFromEnv()
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	sc := c.ServiceContext{
		Context: ctx,
		Out:     os.Stdout,
	}

	if _, _, err := sc.RunEDA(settings); err != nil {
		log.Fatalf("EDA run failed: %v", err)
	}

	log.Println("EDA complete. The visualization shows the simulated shock and recovery period.")
}
