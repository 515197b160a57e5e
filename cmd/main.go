package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/gamepedia/cmd/gamepedia"
	"github.com/dasdy/gamepedia/logging"
)

func main() {
	slog.SetDefault(logging.NewLogger(os.Stderr, slog.LevelInfo))

	gamepedia.Execute()
}
