package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlenc/encode"
	"github.com/signadot/yamlenc/ir"
	"github.com/signadot/yamlenc/parse"
)

func yencMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: negative indent %d", cli.ErrUsage, cfg.Indent)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// forEachInput calls f with the contents of each named file, "-" being
// standard input. No files means standard input.
func forEachInput(cfg *MainConfig, cc *cli.Context, files []string, f func(name string, d []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			theLog.Info("read input", "file", file, "bytes", len(d))
		}
		if err := f(file, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func parseDocs(cfg *MainConfig, d []byte) ([]*ir.Node, error) {
	docs, err := parse.ParseAll(d, cfg.parseOpts()...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		docs = []*ir.Node{ir.Null()}
	}
	return docs, nil
}

// renderDocs writes docs to w. More than one document is always written
// with document markers.
func renderDocs(w io.Writer, docs []*ir.Node, opts []encode.EncodeOption) error {
	if len(docs) > 1 {
		return encode.EncodeAll(docs, w, opts...)
	}
	for _, doc := range docs {
		if err := encode.Encode(doc, w, opts...); err != nil {
			return err
		}
	}
	return nil
}
