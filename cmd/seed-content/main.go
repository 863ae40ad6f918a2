package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joeyave/airia-site/migrations"
	"github.com/joeyave/airia-site/repository"
)

func main() {
	dir := flag.String("dir", "data", "directory holding the JSON content files")
	flag.Parse()

	uri := os.Getenv("SITE_MONGODB_URI")
	if uri == "" {
		panic("SITE_MONGODB_URI is not set")
	}
	name := os.Getenv("SITE_MONGODB_NAME")
	if name == "" {
		name = "airia"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoClient, err := repository.ConnectMongo(ctx, uri)
	if err != nil {
		panic(fmt.Sprintf("failed to connect mongo: %v", err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()

	seeded, err := migrations.SeedContent(ctx, repository.NewMongoContentRepository(mongoClient, name), *dir)
	for _, resource := range seeded {
		fmt.Printf("[OK] %s\n", resource)
	}
	if err != nil {
		fmt.Printf("[FAIL] %v\n", err)
	}

	fmt.Printf("Seeding finished. seeded=%d\n", len(seeded))
}
