package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlenc/encode"
	"github.com/signadot/yamlenc/parse"
)

type MainConfig struct {
	Indent  int  `cli:"name=i aliases=indent desc='indentation width, 0 for flow style'"`
	Doc     bool `cli:"name=doc desc='wrap each document in --- and ... markers'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	X       bool `cli:"name=x desc='expand aliases while parsing'"`
	Verbose bool `cli:"name=v desc='log each input processed'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ExpandAliases(cfg.X)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.EncodeDocument(cfg.Doc),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Diff bool `cli:"name=d desc='show a line diff against the input instead'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Test bool `cli:"name=t desc='exit with status 1 unless every result is truthy'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
