package main

import (
	_ "nishad_gateway/docs"
	"nishad_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Nishad Gateway API
// @version         1.0
// @description     KSA expansion cost calculator, lead capture and admin CMS backed by DynamoDB.

// @contact.name   Nishad Gateway
// @contact.email  info@nishadgateway.com

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin access token. The admin_access_token cookie is accepted too.

func main() {
	routes.Run()
}
