// Command trainsim runs a scenario file through the dispatcher and prints
// the resulting travel log, one movement per line.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"
	"train-dispatch-service/internal/adapters/publish"
	"train-dispatch-service/internal/adapters/repositories"
	"train-dispatch-service/internal/adapters/scenario"
	"train-dispatch-service/internal/config"
	"train-dispatch-service/internal/platform/db"
	"train-dispatch-service/internal/ports"
	"train-dispatch-service/internal/services"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
)

func main() {
	config.Load()

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func scenarioFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "scenario",
		Aliases:  []string{"s"},
		Usage:    "scenario JSON file with connections, items, trains and plan",
		Required: true,
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "trainsim",
		Usage: "simulate trains moving cargo across a track network",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "reverse-weights",
				Usage:   "travel time of synthesized reverse connections (mirror or legacy-minutes)",
				Value:   string(services.ReverseMirror),
				Sources: cli.EnvVars("REVERSE_WEIGHT_POLICY"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "execute the scenario plan and print the travel log",
				Flags: []cli.Flag{
					scenarioFlag(),
					&cli.StringFlag{
						Name:  "db",
						Usage: "SQLite file to store the travel log in",
					},
					&cli.StringFlag{
						Name:    "redis-addr",
						Usage:   "publish the travel log to this Redis server",
						Sources: cli.EnvVars("REDIS_ADDR"),
					},
					&cli.DurationFlag{
						Name:  "redis-ttl",
						Usage: "expiry of published travel logs (0 keeps them)",
						Value: 24 * time.Hour,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runScenario(ctx, cmd.Root().Writer, runOptions{
						ScenarioPath:   cmd.String("scenario"),
						ReverseWeights: cmd.String("reverse-weights"),
						DBPath:         cmd.String("db"),
						RedisAddr:      cmd.String("redis-addr"),
						RedisTTL:       cmd.Duration("redis-ttl"),
					})
				},
			},
			{
				Name:  "path",
				Usage: "print the shortest route between two stations",
				Flags: []cli.Flag{
					scenarioFlag(),
					&cli.StringFlag{Name: "from", Required: true},
					&cli.StringFlag{Name: "to", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return printPath(ctx, cmd.Root().Writer, cmd.String("scenario"), cmd.String("reverse-weights"), cmd.String("from"), cmd.String("to"))
				},
			},
		},
	}
}

type runOptions struct {
	ScenarioPath   string
	ReverseWeights string
	DBPath         string
	RedisAddr      string
	RedisTTL       time.Duration
}

func loadScenario(ctx context.Context, path, reverseWeights string) (*scenario.Scenario, *services.TrackNetwork, *services.CargoLedger, error) {
	policy, err := services.ParseReverseWeightPolicy(reverseWeights)
	if err != nil {
		return nil, nil, nil, err
	}

	sc, err := scenario.LoadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	conns, err := sc.DomainConnections()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("scenario %q: %w", path, err)
	}
	items, err := sc.DomainItems()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("scenario %q: %w", path, err)
	}

	network, ledger, err := services.LoadSimulation(ctx, services.StaticNetwork(conns), services.StaticCargo(items), policy)
	if err != nil {
		return nil, nil, nil, err
	}
	return sc, network, ledger, nil
}

// runScenario prints every logged movement, including those made before an
// aborting failure, then returns the failure.
func runScenario(ctx context.Context, w io.Writer, opts runOptions) error {
	sc, network, ledger, err := loadScenario(ctx, opts.ScenarioPath, opts.ReverseWeights)
	if err != nil {
		return err
	}

	res, err := services.RunSimulation(ctx, sc.Request(), network, ledger)
	if err != nil {
		return err
	}

	for _, rec := range res.Records {
		fmt.Fprintln(w, rec.String())
	}

	sinks, closeSinks, err := openSinks(ctx, opts)
	if err != nil {
		return err
	}
	defer closeSinks()

	if err := services.PublishRun(ctx, res, sinks...); err != nil {
		return err
	}

	return res.Err
}

func openSinks(ctx context.Context, opts runOptions) ([]ports.TravelLogSink, func(), error) {
	var (
		sinks   []ports.TravelLogSink
		closers []func() error
	)
	closeAll := func() {
		for _, c := range closers {
			_ = c()
		}
	}

	if opts.DBPath != "" {
		conn, err := db.OpenSQLite(opts.DBPath)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, conn.Close)
		if err := repositories.InitSchema(conn); err != nil {
			closeAll()
			return nil, nil, err
		}
		sinks = append(sinks, repositories.NewSQLTravelLogStore(conn, repositories.DialectSQLite))
	}

	if opts.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		closers = append(closers, rdb.Close)
		if err := rdb.Ping(ctx).Err(); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("redis ping addr=%s: %w", opts.RedisAddr, err)
		}
		sinks = append(sinks, publish.NewRedisTravelLogPublisher(rdb, opts.RedisTTL))
	}

	return sinks, closeAll, nil
}

func printPath(ctx context.Context, w io.Writer, scenarioPath, reverseWeights, from, to string) error {
	_, network, _, err := loadScenario(ctx, scenarioPath, reverseWeights)
	if err != nil {
		return err
	}

	route, err := services.FindRoute(network, from, to)
	if err != nil {
		return err
	}
	if !route.Found {
		fmt.Fprintf(w, "no path from %s to %s\n", route.From, route.To)
		return nil
	}

	fmt.Fprintf(w, "%v %ds\n", route.Stations, route.TravelSeconds)
	return nil
}
