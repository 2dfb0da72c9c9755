package main

import (
	"ElectSim/election"
	"ElectSim/logger"
	"ElectSim/server"
	"ElectSim/vote"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
)

var (
	PopulationFlag   = flag.Int("population", election.DefaultConfig().Population, "number of individuals")
	SeedFlag         = flag.Uint64("seed", 0, "master seed, 0 seeds from the clock")
	WorkersFlag      = flag.Int("workers", 1, "voting workers")
	RunsFlag         = flag.Int("runs", 1, "number of simulations to run")
	RegistrationFlag = flag.String("registration", "", "party registration weights rep,dem,ind")
	UndecidedFlag    = flag.String("undecided", "", "swing voter probability per party rep,dem,ind")
	TurnoutFlag      = flag.String("turnout", "", "turnout probability per party rep,dem,ind")
	LogLevelFlag     = flag.String("log-level", "info", "log level")
	DevFlag          = flag.Bool("dev", false, "development logging")
	HTTPFlag         = flag.String("http", "", "serve the simulator on this address instead of running once")
)

func loadConfig() (election.Config, error) {
	c := election.DefaultConfig()
	c.Population = *PopulationFlag
	c.Seed = *SeedFlag
	c.Workers = *WorkersFlag
	triples := []struct {
		flag string
		raw  string
		dst  *[vote.NumParties]float64
	}{
		{"registration", *RegistrationFlag, (*[vote.NumParties]float64)(&c.Registration)},
		{"undecided", *UndecidedFlag, &c.Undecided},
		{"turnout", *TurnoutFlag, &c.Turnout},
	}
	for _, t := range triples {
		if t.raw == "" {
			continue
		}
		w, err := vote.ParseWeights(t.raw)
		if err != nil {
			return c, fmt.Errorf("-%s: %w", t.flag, err)
		}
		*t.dst = w
	}
	return c, nil
}

func main() {
	flag.Parse()
	logCfg, err := logger.ConfigFor(*LogLevelFlag, *DevFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log config error:", err)
		os.Exit(2)
	}
	logger.CreateLogger(logCfg)
	log := logger.Logger()
	defer log.Sync()

	if *HTTPFlag != "" {
		if err := server.New(log).Run(*HTTPFlag); err != nil {
			log.Fatal("http_service_error", zap.Error(err))
		}
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	e, err := election.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Info("election_ready", zap.Uint64("seed", e.Seed()), zap.Int("runs", *RunsFlag))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	for i := 0; i < *RunsFlag; i++ {
		res, err := e.Simulate(ctx)
		if err != nil {
			log.Warn("simulation_stopped", zap.Error(err))
			return
		}
		if err := election.WriteReport(os.Stdout, res); err != nil {
			log.Error("write_report_error", zap.Error(err))
			return
		}
	}
}
