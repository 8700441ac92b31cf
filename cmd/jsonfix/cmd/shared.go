package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/faultline/jsonfix/parser"
)

// readInput loads the document to parse: args[0] as a file path if
// given, stdin otherwise.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// parserOptions translates the root command's persistent flags into
// parser.Option values.
func parserOptions() []parser.Option {
	opts := []parser.Option{parser.WithMaxDepth(maxDepth)}
	if strict {
		opts = append(opts, parser.WithStrict())
	}
	if noComments {
		opts = append(opts, parser.WithComments(false))
	}
	if noTrailing {
		opts = append(opts, parser.WithTrailingComma(false))
	}
	if noPython {
		opts = append(opts, parser.WithPythonTokens(false))
	}
	if noUndefined {
		opts = append(opts, parser.WithUndefined(false))
	}
	return opts
}

// parseAndReport runs ParseSmart over the given input, logs every
// diagnostic at debug level, and pretty-dumps the resulting tree when
// --debug is set. It returns the decoded value.
func parseAndReport(input string) parser.Value {
	out := parser.ParseSmart(input, parserOptions()...)
	for _, e := range out.Errors {
		log.Debug(e)
	}
	if !out.OK {
		log.Warnf("recovered from %d issue(s)", out.ErrorCount)
	}

	var result parser.Value
	if len(out.Results) > 0 {
		result = out.Results[0]
	} else {
		result = parser.NullValue()
	}

	if debug {
		pp.Println(result.Native())
	}
	return result
}
