package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/jobboard/internal/config"
	"github.com/osse101/jobboard/internal/database"
	"github.com/osse101/jobboard/internal/database/schema"
)

func main() {
	seed := flag.Bool("seed", false, "Insert sample companies and jobs into an empty database")
	flag.Parse()

	cfg, err := config.LoadDB()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// 1. Connect to the default 'postgres' database to create the target database
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		conn.Close(ctx)
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			conn.Close(ctx)
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	conn.Close(ctx)

	// 2. Apply the schema to the target database
	targetConn, err := pgx.Connect(ctx, cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer targetConn.Close(ctx)

	fmt.Println("Applying schema...")
	if err := database.ApplySchema(ctx, targetConn, schema.SchemaSQL); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println("Schema applied successfully.")

	if *seed {
		fmt.Println("Seeding sample data...")
		if err := database.ApplySchema(ctx, targetConn, schema.SeedSQL); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println("Seed completed.")
	}
}
