package main

import (
	"fmt"

	hocon "github.com/mikai233/gohocon"
	"github.com/mikai233/gohocon/ir"
)

func loadFile(cfg *MainConfig, file string) (*ir.Node, error) {
	node, err := hocon.Load(file, cfg.hoconOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", file, err)
	}
	return node, nil
}
