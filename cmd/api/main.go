package main

import (
	"log"

	_ "vehicle_acquisition/docs"
	"vehicle_acquisition/internal/adapter/http/routes"
	"vehicle_acquisition/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Vehicle Acquisition API
// @version         1.0
// @description     Vehicle acquisition case workflow: stages, time tracking, risk, documents and delivery.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	routes.Run(cfg)
}
