package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/graph-guard/chaindict/pkg/config"
)

// readConfig returns the built-in defaults if configPath is empty.
func readConfig(w io.Writer, configPath string) *config.Config {
	if configPath == "" {
		return config.Default()
	}
	basePath, fileName := basePathAndFileName(configPath)
	conf, err := config.Read(os.DirFS(basePath), fileName)
	if err != nil {
		fmt.Fprintf(w, "reading config: %s\n", err)
		return nil
	}
	return conf
}

func basePathAndFileName(path string) (basePath, fileName string) {
	basePath, fileName = filepath.Split(path)
	return filepath.Clean(basePath), fileName
}
