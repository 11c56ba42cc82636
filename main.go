package main

import (
	"duo-server/confs"
	"duo-server/db"
	"duo-server/server"
	"log"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	serverDb := server.NewServer(database)
	serverDb.Start()
}
