package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"venvet/handlers"
	"venvet/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}

	dbPool, err := utils.OpenDB(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	applyMigrations(dbPool)

	redisClient := utils.OpenRedisPool(os.Getenv("REDIS_URL"))
	defer redisClient.Close()

	router := handlers.NewRouter(dbPool, redisClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Starting server on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func applyMigrations(pool *pgxpool.Pool) {
	migration, err := os.ReadFile("db/migrations/001_init.sql")
	if err != nil {
		log.Printf("migration file not found, skipping: %v", err)
		return
	}
	if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		log.Printf("migration warning: %v", err)
		return
	}
	log.Println("migration applied")
}
