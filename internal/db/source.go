package db

import (
	"context"
	"log"

	"github.com/mohinik7/Metro-Route-Optimization/internal/config"
	"github.com/mohinik7/Metro-Route-Optimization/internal/network"
)

// OpenNetwork builds the graph from the configured source: the database when
// a DSN is set, else the network file, else the built-in map.
func OpenNetwork(ctx context.Context, cfg config.NetworkConfig) (*network.Graph, error) {
	switch {
	case cfg.DSN != "":
		conn, err := Open(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		defer conn.Close()

		g, err := Store{DB: conn, Driver: cfg.Driver}.LoadNetwork(ctx)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded network from %s database: %d stations, %d edges", cfg.Driver, g.Len(), g.EdgeCount())
		return g, nil

	case cfg.NetworkFile != "":
		g, err := network.LoadFile(cfg.NetworkFile)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded network from %s: %d stations, %d edges", cfg.NetworkFile, g.Len(), g.EdgeCount())
		return g, nil
	}

	g := network.Default()
	log.Printf("Loaded built-in network: %d stations, %d edges", g.Len(), g.EdgeCount())
	return g, nil
}
