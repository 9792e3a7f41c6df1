package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/eduplatform/internal/buildinfo"
	"github.com/dmitrijs2005/eduplatform/internal/cli"
	"github.com/dmitrijs2005/eduplatform/internal/config"
	"github.com/dmitrijs2005/eduplatform/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
