package main

import (
	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SISGPED API
// @version         1.0
// @description     Sistema de Gestão de Serviços Pedagógicos backed by DynamoDB.

// @contact.name   API Support
// @contact.email  suporte@sisgped.local

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
