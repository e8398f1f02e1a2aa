package main

import (
	"context"
	"log"
	"os"

	"github.com/mohinik7/Metro-Route-Optimization/internal/config"
	"github.com/mohinik7/Metro-Route-Optimization/internal/db"
	"github.com/mohinik7/Metro-Route-Optimization/internal/planner"
	"github.com/mohinik7/Metro-Route-Optimization/internal/shell"
)

func main() {
	cfg := config.FromFlagsNetwork()

	g, err := db.OpenNetwork(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := shell.New(planner.New(g), os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal(err)
	}
}
