package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/unkn0wn-root/kvcache/internal/command"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// Best-effort: a missing .env is fine.
	_ = godotenv.Load()

	app := command.NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
