package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"
	"train-dispatch-service/internal/adapters/publish"
	"train-dispatch-service/internal/adapters/repositories"
	"train-dispatch-service/internal/api"
	"train-dispatch-service/internal/config"
	"train-dispatch-service/internal/platform/db"
	"train-dispatch-service/internal/ports"
	"train-dispatch-service/internal/services"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQL store, optional Redis) behind ports and starts the HTTP server.
func main() {
	config.Load()
	cfg := config.FromEnv()

	policy, err := services.ParseReverseWeightPolicy(cfg.ReverseWeightPolicy)
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Connect(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	dialect := repositories.DialectFor(cfg.DBDriver)

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(conn, dialect, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	network, ledger, err := services.LoadSimulation(
		ctx,
		repositories.NewSQLNetworkRepository(conn),
		repositories.NewSQLCargoRepository(conn),
		policy,
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("network loaded stations=%d items=%d reverse_weights=%s", len(network.Stations()), len(ledger.Items()), policy)

	sinks := []ports.TravelLogSink{repositories.NewSQLTravelLogStore(conn, dialect)}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping addr=%s: %v", cfg.RedisAddr, err)
		}
		ttl := time.Duration(cfg.RedisTTLSeconds) * time.Second
		sinks = append(sinks, publish.NewRedisTravelLogPublisher(rdb, ttl))
		log.Printf("travel log publishing enabled redis=%s ttl=%s", cfg.RedisAddr, ttl)
	}

	router := api.NewRouter(network, ledger, sinks...)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
