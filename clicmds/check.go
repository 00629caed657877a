package clicmds

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/fetchk/fetchk"
	"gitlab.com/fetchk/filter"
	"gitlab.com/fetchk/store"
)

// uris are read from stdin when check is given no arguments
var stdin io.Reader = os.Stdin

// CheckFlags for the check command
func CheckFlags() []cli.Flag {
	return append(ConfigFlags(),
		&cli.StringFlag{
			Name:  "session",
			Usage: "crawl session id decisions are recorded under (generated if empty)",
			Value: "",
		},
		&cli.BoolFlag{
			Name:  "record",
			Usage: "record decisions in the data directory",
			Value: false,
		},
	)
}

// Check runs every uri given as an argument (or one per line on stdin)
// through the fetch filter and prints its status
func Check(ctx *cli.Context) error {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		return err
	}

	if ctx.String("session") != "" {
		cfg.SessionID = ctx.String("session")
	}

	f, err := filter.FromConfig(cfg)
	if err != nil {
		log.Error().Err(err).Msg("invalid fetch filter configuration")
		return err
	}
	log.Info().Str("session", f.SessionID()).Int("excludes", len(f.Excludes())).Msg("fetch filter ready")

	stats := filter.NewStats()
	recorders := []fetchk.Recorder{stats}

	if ctx.Bool("record") {
		if cfg.DataPath == "" {
			return errors.New("record requires a data directory (--datadir or data_path)")
		}
		decisions := store.NewDecisionStore(cfg.DataPath+"/decisions", f.SessionID())
		if err := decisions.Init(); err != nil {
			log.Error().Err(err).Msg("failed to init decision store")
			return err
		}
		defer func() {
			if err := decisions.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close decision store")
			}
		}()
		recorders = append(recorders, decisions)
	}
	checker := filter.NewRecordingFilter(f, recorders...)

	emit := func(raw string) error {
		status := fetchk.IllegalProtocol
		uri, err := url.Parse(raw)
		if err != nil {
			log.Warn().Err(err).Str("uri", raw).Msg("failed to parse uri")
		} else {
			status = checker.CheckFilter(uri)
		}
		_, err = fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", status, raw)
		return err
	}

	if ctx.Args().Len() > 0 {
		for _, raw := range ctx.Args().Slice() {
			if err := emit(raw); err != nil {
				return err
			}
		}
	} else if err := eachLine(stdin, emit); err != nil {
		return err
	}

	snap := stats.Snapshot()
	log.Info().
		Int64("valid", snap[fetchk.Valid]).
		Int64("out_of_scope", snap[fetchk.OutOfScope]).
		Int64("out_of_context", snap[fetchk.OutOfContext]).
		Int64("illegal_protocol", snap[fetchk.IllegalProtocol]).
		Int64("user_rules", snap[fetchk.UserRules]).
		Msg("check finished")
	return nil
}

func eachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "read uris")
}
