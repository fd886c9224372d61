package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const EnvConfig = "CHAINDICT_CONFIG"

// Command can be any of:
//
//	CommandLoad
//	CommandGet
type Command any

// CommandLoad loads a document into a dict and reports its layout.
type CommandLoad struct {
	ConfigFilePath string
	DocumentPath   string
}

// CommandGet loads a document into a dict and looks up Key.
type CommandGet struct {
	ConfigFilePath string
	DocumentPath   string
	Key            string
}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "chaindict"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("chaindict", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" load - loads a JSON or YAML document and prints statistics",
			" get - loads a JSON or YAML document and prints the value of a key",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	commandUsage := func(command, positional string) func() {
		return func() {
			writeLines(w,
				"",
				fm("usage: %s %s [-config <path>] %s",
					executableName, command, positional),
				"",
				"flags:",
				"-config <path>: defines the configuration file path "+
					"(default: built-in defaults)",
				"",
				"environment variables:",
				fm("%s: configuration file path used "+
					"if -config isn't set", EnvConfig),
			)
		}
	}

	switch args[1] {
	case "load":
		c := CommandLoad{}
		flags.Usage = commandUsage("load", "<document>")
		flags.StringVar(&c.ConfigFilePath, "config", os.Getenv(EnvConfig), "")
		if !parseFlags() {
			return nil
		}
		if flags.NArg() != 1 {
			writeLines(w, "expected exactly one document path.")
			flags.Usage()
			return nil
		}
		c.DocumentPath = flags.Arg(0)
		cmd = c

	case "get":
		c := CommandGet{}
		flags.Usage = commandUsage("get", "<document> <key>")
		flags.StringVar(&c.ConfigFilePath, "config", os.Getenv(EnvConfig), "")
		if !parseFlags() {
			return nil
		}
		if flags.NArg() != 2 {
			writeLines(w, "expected a document path and a key.")
			flags.Usage()
			return nil
		}
		c.DocumentPath, c.Key = flags.Arg(0), flags.Arg(1)
		cmd = c

	case "help":
		PrintHelp(w)
		return nil

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

func PrintHelp(w io.Writer) {
	writeLines(w,
		"chaindict loads key-value documents into a chained hash table.",
		"",
		"JSON documents must contain an object, YAML documents a mapping.",
		"Top-level keys are inserted in document order.",
	)
}
