package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/mikai233/gohocon/internal/encode"
	"github.com/mikai233/gohocon/watch"
)

func watchCmd(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: watch requires exactly one file", cli.ErrUsage)
	}

	w, err := watch.New(args[0], cfg.hoconOpts()...)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	defer w.Stop()

	if err := encode.Encode(w.Current(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)

	w.Start()
	for {
		select {
		case node := <-w.Changes():
			if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
			fmt.Fprintln(cc.Out)
		case reErr := <-w.Errors():
			fmt.Fprintf(cc.Out, "# reload error: %v\n", reErr)
		}
	}
}
