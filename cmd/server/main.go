package main

import (
	"context"
	"log"
	"net/http"

	"github.com/mohinik7/Metro-Route-Optimization/internal/api"
	"github.com/mohinik7/Metro-Route-Optimization/internal/config"
	"github.com/mohinik7/Metro-Route-Optimization/internal/db"
	"github.com/mohinik7/Metro-Route-Optimization/internal/planner"
)

func main() {
	cfg := config.FromFlagsServer()

	g, err := db.OpenNetwork(context.Background(), cfg.Network())
	if err != nil {
		log.Fatal(err)
	}

	p := planner.New(g)
	p.MaxAlternatives = cfg.MaxAlternatives
	p.StrictChange = cfg.StrictChange

	srv := api.New(p, api.Options{
		CORSOrigins:   cfg.CORSOrigins,
		RouteCacheCap: cfg.RouteCacheCap,
	})

	log.Println("metro planner listening on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Mux))
}
