package main

import (
	_ "thaki_platform/docs"
	"thaki_platform/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Thaki Platform API
// @version         1.0
// @description     Marketing site back office (interests, reviews, payments, AI tools) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  info@thaki.ai

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
