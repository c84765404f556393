package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex    bool
	Parse  bool
	Merge  bool
	Expand bool
	Load   bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("HCS_DEBUG_LEX")
	d.Parse = boolEnv("HCS_DEBUG_PARSE")
	d.Merge = boolEnv("HCS_DEBUG_MERGE")
	d.Expand = boolEnv("HCS_DEBUG_EXPAND")
	d.Load = boolEnv("HCS_DEBUG_LOAD")
	d.Match = boolEnv("HCS_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Expand() bool {
	return d.Expand
}
func Load() bool {
	return d.Load
}
func Match() bool {
	return d.Match
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
