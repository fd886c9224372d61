package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/graph-guard/chaindict/pkg/cli"
	"github.com/graph-guard/chaindict/pkg/dict"
	"github.com/graph-guard/chaindict/pkg/source"
)

func load(w, logOut io.Writer, c cli.CommandLoad) (ok bool) {
	d, docSize := loadDocument(w, logOut, c.ConfigFilePath, c.DocumentPath)
	if d == nil {
		return false
	}
	s := d.Stats()
	for _, l := range [][2]string{
		{"document:", fmt.Sprintf(
			"%s (%s)", c.DocumentPath, humanize.Bytes(uint64(docSize)),
		)},
		{"size:", humanize.Comma(int64(s.Size))},
		{"capacity:", humanize.Comma(int64(s.Capacity))},
		{"load:", fmt.Sprintf("%.2f", s.Load)},
		{"longest chain:", humanize.Comma(int64(s.LongestChain))},
		{"empty buckets:", humanize.Comma(int64(s.EmptyBuckets))},
		{"resizes:", humanize.Comma(s.Counters.GetResizes())},
	} {
		fmt.Fprintf(w, "%-15s%s\n", l[0], l[1])
	}
	return true
}

func get(w, logOut io.Writer, c cli.CommandGet) (ok bool) {
	d, _ := loadDocument(w, logOut, c.ConfigFilePath, c.DocumentPath)
	if d == nil {
		return false
	}
	v, err := d.Get(c.Key)
	if err != nil {
		fmt.Fprintln(w, err)
		return false
	}
	fmt.Fprintf(w, "%v\n", v)
	return true
}

// loadDocument returns nil if any step fails, after printing the error to w.
func loadDocument(
	w, logOut io.Writer,
	configPath, documentPath string,
) (d *dict.Dict[string, any], documentSize int) {
	conf := readConfig(w, configPath)
	if conf == nil {
		return nil, 0
	}

	d, err := dict.NewFromConfig[string, any](conf)
	if err != nil {
		fmt.Fprintf(w, "creating dict: %s\n", err)
		return nil, 0
	}
	d.SetLogger(conf.Logger(logOut))

	data, err := os.ReadFile(documentPath)
	if err != nil {
		fmt.Fprintf(w, "reading document: %s\n", err)
		return nil, 0
	}
	src, err := parseDocument(documentPath, data)
	if err != nil {
		fmt.Fprintf(w, "parsing document: %s\n", err)
		return nil, 0
	}
	if err := d.Update(src); err != nil {
		fmt.Fprintf(w, "loading document: %s\n", err)
		return nil, 0
	}
	return d, len(data)
}

func parseDocument(path string, data []byte) (*source.Pairs[string, any], error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return source.ParseJSON(data)
	case ".yaml", ".yml":
		return source.ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported document extension %q", ext)
	}
}
