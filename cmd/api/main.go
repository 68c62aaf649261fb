package main

import (
	"github.com/Sandrinhosilv/back-marceneiro/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Back Marceneiro PIX API
// @version         1.0
// @description     PIX checkout backend: creates Mercado Pago charges and fans out lead/conversion data.

// @host localhost:4000

// @BasePath  /

func main() {
	routes.Run()
}
