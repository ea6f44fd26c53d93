package main

import (
	_ "Backend-KidCheckin/docs"
	"Backend-KidCheckin/src/database"
	"Backend-KidCheckin/src/jobs"
	"Backend-KidCheckin/src/routes"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title KidCheckin API
// @version 1.0
// @description Check-in and attendance backend for a children's program.
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq are optional; without them the totals cache and the
	// simulated tag printer are skipped
	database.InitRedis()
	database.InitAsynq()
	go jobs.StartWorker()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8888"
	}

	log.Println("Server is running on port " + appPort)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appPort)))
	if err != nil {
		log.Fatal(err)
	}

}
