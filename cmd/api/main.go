package main

import (
	"log"

	_ "voltflow_crm/docs"
	"voltflow_crm/internal/adapter/http/routes"
	"voltflow_crm/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           VoltFlow CRM API
// @version         1.0
// @description     Pipeline service for leads, clients, jobs, quotes and invoices: stage registry, transition checks, conversions and activity log.
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
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
