package db

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const databaseName = "library"

// Connect loads environment variables, opens a MongoDB client from
// MONGODB_URL and verifies the connection with a ping.
func Connect(ctx context.Context) (*mongo.Database, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	uri := os.Getenv("MONGODB_URL")
	if uri == "" {
		return nil, errors.New("MONGODB_URL is not set in the environment variables")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, err
	}

	return client.Database(databaseName), nil
}
