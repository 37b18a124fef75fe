package main

import (
	"fmt"
	"os"

	"github.com/translogica/tms-console/internal/config"
	"github.com/translogica/tms-console/internal/logger"
	"github.com/translogica/tms-console/internal/stub"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	store := stub.NewStore()
	handler := stub.NewHandler(store, log)
	router := stub.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Stub.Host, cfg.Stub.Port)
	log.Info().Str("addr", addr).Msg("starting tms stub backend")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
