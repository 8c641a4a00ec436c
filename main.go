package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/econopapi/terraza-zocalo-hosts/cmd/app"
)

// @title           Terraza Zócalo hosteos API
// @description     Seating-event logging and daily reporting for restaurant floor teams.
//
// @contact.name   Daniel Limón
// @contact.email  dani@dlimon.net
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by POST /access
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
