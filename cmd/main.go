package main

import (
	"log"
	"os"

	"github.com/anirudhms/campus-counsel/internal/db"
	"github.com/anirudhms/campus-counsel/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017/counseling" // Default fallback
	}

	// An unreachable store is logged but the server still starts; requests
	// that need it answer 500 until it comes back.
	database := db.ConnectMongoDB(mongoURI, "counseling")

	handlers.Init(database)
	handlers.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Fatal(app.Listen(":" + port))
}
