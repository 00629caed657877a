package clicmds

import (
	"fmt"
	"io/ioutil"

	"github.com/gobuffalo/packr/v2"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/fetchk/fetchk"
	"gitlab.com/fetchk/filter"
)

const defaultConfigName = "config.toml"

var defaults = packr.New("fetchk-defaults", "./defaults")

// DefaultConfig returns the embedded default configuration
func DefaultConfig() (*fetchk.Config, error) {
	data, err := defaults.Find(defaultConfigName)
	if err != nil {
		return nil, errors.Wrap(err, "find default config")
	}
	return DecodeConfig(data)
}

// DecodeConfig from toml
func DecodeConfig(data []byte) (*fetchk.Config, error) {
	cfg := &fetchk.Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}

// ConfigFlags shared by every command building a fetch filter
func ConfigFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "config to use",
			Value: "",
		},
		&cli.BoolFlag{
			Name:  "defaults",
			Usage: "start from the built in default config (common logout exclusions)",
			Value: false,
		},
		&cli.StringFlag{
			Name:  "url",
			Usage: "crawl target, its host is in scope when no scope rules are given",
			Value: "",
		},
		&cli.StringSliceFlag{
			Name:  "scope",
			Usage: "scope regex tested against the full uri",
		},
		&cli.StringSliceFlag{
			Name:  "scope-host",
			Usage: "host whose http(s) uris are in scope",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "exclude regex, replaces exclude_regexes from the config",
		},
		&cli.StringSliceFlag{
			Name:  "always-in-scope",
			Usage: "domain always in scope (exact host match)",
		},
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "data directory",
			Value: "",
		},
	}
}

// LoadConfig reads the config file (or defaults) and applies flags over it
func LoadConfig(ctx *cli.Context) (*fetchk.Config, error) {
	cfg := &fetchk.Config{}

	switch {
	case ctx.String("config") != "":
		data, err := ioutil.ReadFile(ctx.String("config"))
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if cfg, err = DecodeConfig(data); err != nil {
			return nil, err
		}
	case ctx.Bool("defaults"):
		var err error
		if cfg, err = DefaultConfig(); err != nil {
			return nil, err
		}
	}

	if ctx.String("url") != "" {
		cfg.URL = ctx.String("url")
	}
	cfg.ScopeRegexes = append(cfg.ScopeRegexes, ctx.StringSlice("scope")...)
	for _, host := range ctx.StringSlice("scope-host") {
		cfg.ScopeRegexes = append(cfg.ScopeRegexes, filter.ScopeRegexForHost(host))
	}
	if ctx.IsSet("exclude") {
		cfg.ExcludeRegexes = ctx.StringSlice("exclude")
	}
	for _, domain := range ctx.StringSlice("always-in-scope") {
		cfg.AlwaysInScope = append(cfg.AlwaysInScope, fetchk.AlwaysInScopeDomain{Domain: domain})
	}
	if ctx.String("datadir") != "" {
		cfg.DataPath = ctx.String("datadir")
	}
	return cfg, nil
}

// PrintConfig writes the embedded default config
func PrintConfig(ctx *cli.Context) error {
	data, err := defaults.FindString(defaultConfigName)
	if err != nil {
		return errors.Wrap(err, "find default config")
	}
	_, err = fmt.Fprint(ctx.App.Writer, data)
	return err
}
