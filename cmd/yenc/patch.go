package main

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlenc/ir"
	"github.com/signadot/yamlenc/parse"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	pd, err := readInput(cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ops, err := decodePatch(pd)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachInput(cfg.MainConfig, cc, args[1:], func(_ string, d []byte) error {
		docs, err := parseDocs(cfg.MainConfig, d)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			docs[i], err = applyPatch(ops, doc)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
		}
		return renderDocs(cc.Out, docs, cfg.encOpts(cc.Out))
	})
}

// decodePatch reads a list of patch operations written in YAML or JSON.
func decodePatch(d []byte) (jsonpatch.Patch, error) {
	node, err := parse.Parse(d, parse.ExpandAliases(true))
	if err != nil {
		return nil, err
	}
	jd, err := marshalJSON(node)
	if err != nil {
		return nil, err
	}
	return jsonpatch.DecodePatch(jd)
}

// applyPatch applies ops to the value of doc. Anchors and aliases in doc are
// resolved first, as JSON has no way to represent them.
func applyPatch(ops jsonpatch.Patch, doc *ir.Node) (*ir.Node, error) {
	jd, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(jd)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

func marshalJSON(node *ir.Node) ([]byte, error) {
	v, err := ir.ToAny(node)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
