package main

import (
	"fmt"
	"os"

	"github.com/graph-guard/chaindict/pkg/cli"
)

func main() {
	w := os.Stdout
	ok := true
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandLoad:
		ok = load(w, os.Stderr, c)
	case cli.CommandGet:
		ok = get(w, os.Stderr, c)
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
	}
	if !ok {
		os.Exit(1)
	}
}
