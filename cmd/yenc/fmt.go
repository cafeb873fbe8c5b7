package main

import (
	"bytes"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/yamlenc/encode"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return forEachInput(cfg.MainConfig, cc, args, func(name string, d []byte) error {
		docs, err := parseDocs(cfg.MainConfig, d)
		if err != nil {
			return err
		}
		if !cfg.Diff {
			return renderDocs(cc.Out, docs, cfg.encOpts(cc.Out))
		}
		buf := &bytes.Buffer{}
		// diffs are never colored
		opts := append(cfg.encOpts(buf), encode.EncodeColors(nil))
		if err := renderDocs(buf, docs, opts); err != nil {
			return err
		}
		return writeLineDiff(cc.Out, name, string(d), buf.String())
	})
}

// writeLineDiff writes the lines of from and to prefixed by '-', '+' or a
// space. Nothing is written if they are equal.
func writeLineDiff(w io.Writer, name, from, to string) error {
	if from == to {
		return nil
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	buf.WriteString("--- " + name + "\n+++ " + name + "\n")
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		text := strings.TrimSuffix(diff.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			buf.WriteString(prefix + ln + "\n")
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
