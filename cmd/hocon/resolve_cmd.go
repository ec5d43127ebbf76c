package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/mikai233/gohocon/internal/encode"
)

func resolveCmd(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		cfg.Resolve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: resolve requires exactly one file", cli.ErrUsage)
	}
	node, err := loadFile(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
}
