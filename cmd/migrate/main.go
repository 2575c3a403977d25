package main

import (
	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up, step-up, down, drop, version) is required")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	direction := os.Args[1]

	if err := helper.Runner(cfg, direction); err != nil {
		log.Fatal().Err(err).Str("direction", direction).Msg("Migration failed")
	}
}
