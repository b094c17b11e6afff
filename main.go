package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"Momentum/CronJobs"
	"Momentum/FiberConfig"
	"Momentum/Ledger"
	"Momentum/Models"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment")
	}
	setupLogging()

	Models.Connect()

	scheduler := CronJobs.NewScheduler(Models.DB, Ledger.New(Models.DB))
	if err := scheduler.Start(); err != nil {
		log.Printf("Failed to start background scheduler: %v", err)
	}
	defer scheduler.Stop()

	FiberConfig.FiberConfig()
}

func setupLogging() {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	logFile, err := os.OpenFile("logs/application.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime)
}
