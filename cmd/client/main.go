package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/melodia/internal/client/cli"
	"github.com/dmitrijs2005/melodia/internal/client/config"
	"github.com/dmitrijs2005/melodia/internal/flagx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	args := flagx.Positional(os.Args[1:], config.FlagsWithValue)

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		log.Fatalf("%v", err)
	}

}
