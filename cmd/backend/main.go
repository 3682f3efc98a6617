package main

import (
	"log"

	"boq-backend/internal/api"
)

// @title BOQ Estimator API
// @version 1.0
// @description Сервис расчета строительных смет: справочник расценок, проекты, расчет и сравнение с исторической базой

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
