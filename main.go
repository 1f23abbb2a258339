package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Balaji-Kanagarasu/Library-BE/db"
	"github.com/Balaji-Kanagarasu/Library-BE/handlers"
	"github.com/Balaji-Kanagarasu/Library-BE/routes"
)

func main() {
	ctx := context.Background()

	database, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	log.Println("connected to MongoDB")

	h := handlers.New(
		db.NewUserStore(database),
		db.NewBookStore(database),
		db.NewTransactionStore(database),
	)

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	r.Use(cors.New(config))

	routes.Register(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("server running on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
