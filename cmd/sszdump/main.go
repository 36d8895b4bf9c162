// sszdump resolves the (preset, fork, type) context of one consensus test
// fixture from its path and sidecar metadata, decodes the SSZ payload and
// prints it as YAML or JSON.
//
// Exit codes: 0 on success, 2 when the fixture is outside this tool's
// coverage (malformed path, unknown type, undecodable bytes), 1 on anything
// unexpected.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"alma.local/sszdump/fixture"
	"alma.local/sszdump/internal/sszcodec"
	"alma.local/sszdump/schemas"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitSkip    = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	flags := flag.NewFlagSet("sszdump", flag.ContinueOnError)
	forkConfig := flags.String("fork-config", fixture.DefaultForkConfigPath, "fork activation order descriptor")
	format := flags.String("format", "", "stdout format: yaml or json (default yaml)")
	if err := flags.Parse(args); err != nil {
		return exitFailure
	}
	if flags.NArg() < 1 || flags.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "usage: sszdump [flags] <fixture.ssz_snappy> [output.{yaml,json}]")
		return exitFailure
	}
	input := flags.Arg(0)
	output := flags.Arg(1)

	fp, err := fixture.Decompose(input)
	if err != nil {
		return report(log, err)
	}

	hist := fixture.LoadForkHistory(*forkConfig)
	res := fixture.Resolve(fp, hist, nil)
	for _, w := range res.Warnings {
		log.Warn().Msg(w)
	}
	log.Info().
		Str("preset", res.Preset).
		Str("fork", res.Fork).
		Str("type", res.TypeName).
		Str("file", res.FileName).
		Msg("resolved fixture context")

	schema, err := schemas.NewRegistry().Lookup(res.Fork, res.Preset, res.TypeName)
	if err != nil {
		return report(log, err)
	}

	payload, err := sszcodec.ReadFixture(input)
	if err != nil {
		return report(log, err)
	}
	value, err := sszcodec.Decode(payload, schema)
	if err != nil {
		return report(log, err)
	}

	if output != "" {
		out, err := sszcodec.Export(value, sszcodec.FormatForPath(output))
		if err != nil {
			return report(log, err)
		}
		if err := atomic.WriteFile(output, bytes.NewReader(out)); err != nil {
			return report(log, fmt.Errorf("write output: %w", err))
		}
		log.Info().Str("path", output).Msg("exported decoded value")
		return exitOK
	}

	stdoutFormat := *format
	if stdoutFormat == "" {
		stdoutFormat = sszcodec.FormatYAML
	}
	out, err := sszcodec.Export(value, stdoutFormat)
	if err != nil {
		return report(log, err)
	}
	os.Stdout.Write(out)
	return exitOK
}

// report classifies a failure per the batch-scanner contract: coverage gaps
// exit 2 so a corpus sweep can tell "not ours" from "broken tool".
func report(log zerolog.Logger, err error) int {
	switch {
	case errors.Is(err, fixture.ErrPathFormat),
		errors.Is(err, schemas.ErrUnknownFork),
		errors.Is(err, schemas.ErrUnknownType),
		errors.Is(err, sszcodec.ErrDecode):
		log.Warn().Err(err).Msg("fixture not covered, skipping")
		return exitSkip
	default:
		log.Error().Err(err).Msg("unexpected failure")
		return exitFailure
	}
}
