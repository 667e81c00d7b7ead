package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	logLevel = flag.String("log-level", envOr("CPCLASS_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	upperHex = flag.Bool("upper", true, "Print hex digits in upper case")
)

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func usage() {
	fmt.Fprintln(os.Stderr, `cpclass - HTML tokenizer code point classes
Usage: cpclass [flags] <command> [args]

Commands:
  classify <cp>...  Classify code points (U+XXXX, 0xXX, decimal, EOF or one character)
  scan [file]       Classify every character of a file or stdin
  table             Print the classes of 0x00-0x7F
  help              Show help

Flags:`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", *logLevel).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	cmd := flag.Arg(0)
	if cmd == "help" {
		usage()
		return
	}
	if err := run(os.Stdout, os.Stdin, cmd, flag.Args()[1:], *upperHex); err != nil {
		if errors.Is(err, errUsage) {
			usage()
		}
		log.Error().Err(err).Str("command", cmd).Msg("Command failed")
		os.Exit(1)
	}
}
