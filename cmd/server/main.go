package main

import (
	"log"
	"os"

	"ecartx_back_end/internal/catalog"
	"ecartx_back_end/internal/config"
	"ecartx_back_end/internal/database"
	"ecartx_back_end/internal/handlers/user"
	"ecartx_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// ✅ Catalogue en mémoire : chargé une fois, lecture seule ensuite
	catalog.Load()

	// ✅ Données de démonstration du backend mocké
	user.SeedDemoUser()
	user.SeedMockOrders()

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur EcartX lancé sur le port", port)
	r.Run(":" + port)
}
