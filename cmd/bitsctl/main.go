package main

import (
	"os"

	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.ConfigureRuntime()
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("bitsctl failed")
		os.Exit(1)
	}
}
