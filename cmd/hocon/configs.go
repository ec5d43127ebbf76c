package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	hocon "github.com/mikai233/gohocon"
	"github.com/mikai233/gohocon/internal/encode"
)

// MainConfig holds the options common to every subcommand: classpath
// roots, environment fallback, output file, and colorization.
type MainConfig struct {
	Color bool `cli:"name=color desc='force colorized output'"`
	NoEnv bool `cli:"name=no-env desc='disable substitution fallback to the process environment'"`
	I     []string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) classpathOpt() cli.FuncOpt {
	return func(_ *cli.Context, a string) (any, error) {
		cfg.I = append(cfg.I, a)
		return a, nil
	}
}

// hoconOpts translates the common flags into Load/FromStr options.
func (cfg *MainConfig) hoconOpts() []hocon.Option {
	opts := []hocon.Option{hocon.UseSystemEnvironment(!cfg.NoEnv)}
	if len(cfg.I) > 0 {
		opts = append(opts, hocon.ClasspathRoots(cfg.I...))
	}
	return opts
}

// encOpts picks colorized or plain rendering the way cmd/o's encOpts
// picks an output format: explicit -color wins, otherwise color is only
// enabled when w is a terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.WithColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.WithColors(encode.NewColors())}
	}
	return nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type ResolveConfig struct {
	*MainConfig
	Resolve *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	Validate *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='emit an RFC 7396 JSON merge patch instead of a text diff'"`
	Field bool `cli:"name=field desc='emit a field-by-field change list instead of a text diff'"`
	Diff  *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Watch *cli.Command
}
