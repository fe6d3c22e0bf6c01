// Command sim runs seeded CPU-vs-CPU Catch Five batches and reports
// aggregate results. Configuration comes from the environment (optionally
// a .env file): SIM_SEED, SIM_GAMES, SIM_TARGET_SCORE, SIM_DECK_COLOR,
// LOG_LEVEL.
package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/PGD3311/Catch-Five-Arena-sub001/engine"
	"github.com/PGD3311/Catch-Five-Arena-sub001/internal/sim"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(envStr("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	cfg := sim.Config{
		Seed:        uint64(envInt("SIM_SEED", 1)),
		DeckColor:   envStr("SIM_DECK_COLOR", "blue"),
		TargetScore: envInt("SIM_TARGET_SCORE", engine.DefaultTargetScore),
		Logger:      log,
	}
	games := envInt("SIM_GAMES", 100)

	log.WithFields(logrus.Fields{
		"games":  games,
		"seed":   cfg.Seed,
		"target": cfg.TargetScore,
	}).Info("starting batch")

	stats, err := sim.RunBatch(cfg, games)
	if err != nil {
		log.WithError(err).Fatal("batch aborted")
	}

	log.WithFields(logrus.Fields{
		"games":     stats.Games,
		"teamWins":  stats.TeamWins,
		"avgRounds": stats.AvgRounds,
		"setRate":   stats.SetRate,
	}).Info("batch complete")
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
