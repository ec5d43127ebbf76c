package main

import "github.com/scott-cotton/cli"

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"classpath"},
			Description: "add a directory to the include classpath (repeatable)",
			Type:        cli.NamedFuncOpt(cfg.classpathOpt(), "(dir)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "hocon").
		WithSynopsis("hocon [opts] command [opts]").
		WithDescription("hocon loads, resolves, queries, diffs and watches HOCON configuration documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hoconMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ResolveCommand(cfg),
			ValidateCommand(cfg),
			DiffCommand(cfg),
			WatchCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <dotted.path> <file>").
		WithDescription("resolve file and print the value at dotted.path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithAliases("r").
		WithSynopsis("resolve <file>").
		WithDescription("parse, expand includes, resolve substitutions, and print the result as JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return resolveCmd(cfg, cc, args)
		})
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("v").
		WithSynopsis("validate <file>").
		WithDescription("load and fully resolve file, reporting the first error found").
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-field|-patch] <old> <new>").
		WithDescription("compare two resolved HOCON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Watch, "watch").
		WithAliases("w").
		WithSynopsis("watch <file>").
		WithDescription("re-resolve file and print it every time it or a sibling file changes").
		WithRun(func(cc *cli.Context, args []string) error {
			return watchCmd(cfg, cc, args)
		})
}
