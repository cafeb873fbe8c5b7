package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YAMLENC_DEBUG_PARSE")
	d.Encode = boolEnv("YAMLENC_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}

func Encode() bool {
	return d.Encode
}
