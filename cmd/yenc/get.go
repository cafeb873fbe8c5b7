package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlenc/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachInput(cfg.MainConfig, cc, args[1:], func(_ string, d []byte) error {
		docs, err := parseDocs(cfg.MainConfig, d)
		if err != nil {
			return err
		}
		res, err := getAll(docs, path)
		if err != nil {
			return err
		}
		return renderDocs(cc.Out, res, cfg.encOpts(cc.Out))
	})
}

// getAll returns the element at path in each document, skipping documents
// which do not have one.
func getAll(docs []*ir.Node, path string) ([]*ir.Node, error) {
	res := make([]*ir.Node, 0, len(docs))
	for i, doc := range docs {
		elt, err := doc.GetPath(path)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if elt == nil {
			continue
		}
		res = append(res, elt)
	}
	return res, nil
}
