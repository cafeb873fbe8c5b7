package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlenc/ir"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	code := args[0]
	if _, err := compileQuery(code, ir.Null()); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	allTrue := true
	err = forEachInput(cfg.MainConfig, cc, args[1:], func(_ string, d []byte) error {
		docs, err := parseDocs(cfg.MainConfig, d)
		if err != nil {
			return err
		}
		res, ok, err := queryDocs(code, docs)
		if err != nil {
			return err
		}
		allTrue = allTrue && ok
		return renderDocs(cc.Out, res, cfg.encOpts(cc.Out))
	})
	if err != nil {
		return err
	}
	return testStatus(cfg.Test, allTrue)
}

// queryDocs runs code against each document, reporting whether every
// result is truthy.
func queryDocs(code string, docs []*ir.Node) ([]*ir.Node, bool, error) {
	allTrue := true
	res := make([]*ir.Node, len(docs))
	for i, doc := range docs {
		out, err := runQuery(code, doc)
		if err != nil {
			return nil, false, fmt.Errorf("document %d: %w", i, err)
		}
		res[i] = out
		allTrue = allTrue && ir.Truth(out)
	}
	return res, allTrue, nil
}

func testStatus(test, allTrue bool) error {
	if test && !allTrue {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func queryEnv(doc *ir.Node) (map[string]any, error) {
	v, err := ir.ToAny(doc)
	if err != nil {
		return nil, err
	}
	return map[string]any{"doc": v}, nil
}

// compileQuery compiles code with getpath bound to doc. doc is left
// untyped in the program, its shape is only known when it runs.
func compileQuery(code string, doc *ir.Node) (*vm.Program, error) {
	return expr.Compile(code, expr.AllowUndefinedVariables(), getpathFunc(doc))
}

func getpathFunc(doc *ir.Node) expr.Option {
	return expr.Function("getpath", func(params ...any) (any, error) {
		path := params[0].(string)
		res, err := doc.GetPath(path)
		if err != nil {
			return nil, err
		}
		if res == nil {
			return nil, nil
		}
		return ir.ToAny(res)
	},
		new(func(string) any))
}

func runQuery(code string, doc *ir.Node) (*ir.Node, error) {
	env, err := queryEnv(doc)
	if err != nil {
		return nil, err
	}
	prg, err := compileQuery(code, doc)
	if err != nil {
		return nil, err
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	return ir.FromAny(out)
}
