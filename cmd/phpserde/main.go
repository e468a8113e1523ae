// phpserde decodes a serialized PHP value and prints the resulting tree.
//
// The payload is read from the given file, or from stdin when no file is
// named. Decoding failures are reported with the byte offset at which the
// input violated the format.
package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-gum/phpserde"
)

var cli struct {
	Input      string `arg:"" optional:"" help:"File holding a serialized PHP value. Reads stdin when omitted." type:"path"`
	SingleByte bool   `help:"Charge every character one byte when consuming string lengths, for single-byte charset payloads."`
	Keys       string `help:"Regular expression; string keys are kept only when it matches the whole key." placeholder:"PATTERN"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("phpserde"),
		kong.Description("Decode a serialized PHP value and print the resulting tree."),
		kong.UsageOnError(),
	)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "phpserde: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	input, err := readInput()
	if err != nil {
		return err
	}

	decoder := phpserde.NewDecoder()

	if cli.SingleByte {
		decoder = decoder.WithSingleByteLengths()
	}

	if cli.Keys != "" {
		pattern, err := regexp.Compile(cli.Keys)
		if err != nil {
			return fmt.Errorf("compile key filter: %w", err)
		}
		decoder = decoder.WithKeyFilter(pattern)
	}

	value, err := decoder.Parse(strings.TrimRight(input, "\r\n"))
	if err != nil {
		return err
	}

	fmt.Println(value)
	return nil
}

func readInput() (string, error) {
	if cli.Input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(cli.Input)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
