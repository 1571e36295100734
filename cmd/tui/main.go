package main

import (
	"context"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"todoboard/internal/apiclient"
	"todoboard/internal/config"
	"todoboard/internal/controller"
	"todoboard/internal/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		panic(err)
	}

	// The terminal owns stdout, so logs go to a file.
	filePerms := 0o666
	logFile, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		panic(err)
	}
	defer logFile.Close()

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	})

	log.Info().Str("api", cfg.APIBaseURL).Msg("starting todo board client...")

	client := apiclient.New(cfg.APIBaseURL, cfg.TimeoutDuration())
	ctrl := controller.New(context.Background(), client)

	if err := ui.New(ctrl).Run(); err != nil {
		log.Err(err).Msg("terminal app exited with error")
		panic(err)
	}
}
