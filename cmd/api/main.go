package main

import (
	"context"
	"log"

	"payline/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
//
// @title Payline API
// @version 1.0
// @description Creator payout ledger and community promotion APIs.
// @BasePath /v1
func main() {
	log.Println("payline api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("payline api stopped with error: %v", err)
	}
}
