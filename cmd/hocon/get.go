package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/mikai233/gohocon/internal/encode"
	"github.com/mikai233/gohocon/path"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a dotted path and a file", cli.ErrUsage)
	}
	dotted, file := args[0], args[1]

	node, err := loadFile(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	segs := path.SplitPath(dotted)
	v, ok := path.GetByPath(node, segs)
	if !ok {
		return fmt.Errorf("no value at path %q", dotted)
	}
	return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...)
}
