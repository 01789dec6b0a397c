package main

import (
	"flag"
	"os"

	"persp3d/internal/config"

	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "optional settings file (yaml/toml/json)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	settings, err := cfg.Settings()
	if err != nil {
		log.Fatal().Err(err).Msg("translating config")
	}

	g := newGame(settings, log)
	g.run()
}
