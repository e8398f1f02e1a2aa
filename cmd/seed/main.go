package main

import (
	"context"
	"log"
	"time"

	"github.com/mohinik7/Metro-Route-Optimization/internal/config"
	"github.com/mohinik7/Metro-Route-Optimization/internal/db"
	"github.com/mohinik7/Metro-Route-Optimization/internal/network"
)

func main() {
	cfg := config.FromFlagsNetwork()
	if cfg.DSN == "" {
		log.Fatalf("usage: seed -driver <mysql|sqlite|pgx> -dsn <dsn> [-network map.yaml]")
	}

	table := network.DefaultTable()
	if cfg.NetworkFile != "" {
		var err error
		if table, err = network.ReadTable(cfg.NetworkFile); err != nil {
			log.Fatal(err)
		}
	}

	conn, err := db.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := db.Store{DB: conn, Driver: cfg.Driver}
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal(err)
	}
	if err := store.Seed(ctx, table); err != nil {
		log.Fatal(err)
	}
	log.Printf("Seeded %d stations and %d edges", len(table.Stations), len(table.Edges))
}
