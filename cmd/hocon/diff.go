package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/mikai233/gohocon/internal/configdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files, old and new", cli.ErrUsage)
	}
	if cfg.Patch && cfg.Field {
		return fmt.Errorf("%w: cannot use -patch and -field together", cli.ErrUsage)
	}

	oldNode, err := loadFile(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	newNode, err := loadFile(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}

	switch {
	case cfg.Patch:
		patch, err := configdiff.MergePatch(oldNode, newNode)
		if err != nil {
			return fmt.Errorf("error computing merge patch: %w", err)
		}
		var pretty map[string]any
		if err := json.Unmarshal(patch, &pretty); err == nil {
			if indented, err := json.MarshalIndent(pretty, "", "  "); err == nil {
				fmt.Fprintln(cc.Out, string(indented))
				return nil
			}
		}
		fmt.Fprintln(cc.Out, string(patch))
		return nil
	case cfg.Field:
		changes, err := configdiff.FieldDiff(oldNode, newNode)
		if err != nil {
			return fmt.Errorf("error computing field diff: %w", err)
		}
		printFieldChanges(cc, changes, "")
		return nil
	default:
		text, err := configdiff.TextDiff(oldNode, newNode)
		if err != nil {
			return fmt.Errorf("error computing diff: %w", err)
		}
		fmt.Fprintln(cc.Out, text)
		return nil
	}
}

func printFieldChanges(cc *cli.Context, changes []configdiff.FieldChange, prefix string) {
	for _, c := range changes {
		name := c.Field
		if prefix != "" {
			name = prefix + "." + name
		}
		switch c.Kind {
		case configdiff.Added:
			fmt.Fprintf(cc.Out, "+ %s = %v\n", name, c.To)
		case configdiff.Removed:
			fmt.Fprintf(cc.Out, "- %s = %v\n", name, c.From)
		case configdiff.Modified:
			if c.Nested != nil {
				printFieldChanges(cc, c.Nested, name)
				continue
			}
			fmt.Fprintf(cc.Out, "~ %s = %v -> %v\n", name, c.From, c.To)
		}
	}
}
