package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		cfg.Validate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: validate requires exactly one file", cli.ErrUsage)
	}
	_, err = loadFile(cfg.MainConfig, args[0])
	if err != nil {
		if cfg.Color {
			fmt.Fprintln(cc.Out, color.RedString("invalid: %v", err))
		} else {
			fmt.Fprintf(cc.Out, "invalid: %v\n", err)
		}
		return cli.ExitCodeErr(1)
	}
	if cfg.Color {
		fmt.Fprintln(cc.Out, color.GreenString("ok"))
	} else {
		fmt.Fprintln(cc.Out, "ok")
	}
	return nil
}
