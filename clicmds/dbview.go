package clicmds

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/fetchk/fetchk"
	"gitlab.com/fetchk/store"
)

func DBViewFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "data directory",
			Value: "fetchktmp",
		},
		&cli.StringFlag{
			Name:  "session",
			Usage: "only show this crawl session",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "status",
			Usage: "only show decisions with this status (VALID, OUT_OF_SCOPE, ...)",
			Value: "",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "dump full decision records",
			Value: false,
		},
	}
}

// DBView prints recorded fetch decisions
func DBView(ctx *cli.Context) error {
	var status fetchk.FetchStatus
	if ctx.String("status") != "" {
		var err error
		if status, err = fetchk.ParseFetchStatus(ctx.String("status")); err != nil {
			return err
		}
	}

	decisions := store.NewDecisionStore(ctx.String("datadir")+"/decisions", ctx.String("session"))
	if err := decisions.Init(); err != nil {
		log.Error().Err(err).Msg("failed to init database for viewing")
		return err
	}
	defer decisions.Close()

	entries, err := decisions.Decisions(ctx.String("session"), status)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "Had %d decisions\n", len(entries))
	for _, d := range entries {
		if ctx.Bool("dump") {
			spew.Fdump(w, d)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", d.SessionID, d.Status, d.URI, d.Count)
	}

	counts, err := decisions.Counts(ctx.String("session"))
	if err != nil {
		return err
	}
	for _, s := range fetchk.FetchStatuses {
		fmt.Fprintf(w, "%s: %d\n", s, counts[s])
	}
	return nil
}
