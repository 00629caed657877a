package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/fetchk/clicmds"
)

func main() {
	app := cli.NewApp()
	app.Name = "fetchk"
	app.Version = "0.1"
	app.Usage = "Decide which crawled uris are safe to fetch"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "log every filtered uri",
			Value: false,
		},
	}
	app.Before = func(ctx *cli.Context) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if ctx.Bool("debug") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:    "check",
			Aliases: []string{"c"},
			Usage:   "check uris against the fetch filter",
			Action:  clicmds.Check,
			Flags:   clicmds.CheckFlags(),
		},
		{
			Name:    "dbview",
			Aliases: []string{"db"},
			Usage:   "view recorded fetch decisions",
			Action:  clicmds.DBView,
			Flags:   clicmds.DBViewFlags(),
		},
		{
			Name:   "config",
			Usage:  "print the default config",
			Action: clicmds.PrintConfig,
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("fetchk failed")
	}
}
