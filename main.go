package main

import (
	"log/slog"
	"os"
	"time"

	"naptar/src-server/command"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      command.LogLevel,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
