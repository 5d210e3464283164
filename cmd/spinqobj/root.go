package main

import (
	"io"

	"github.com/katalvlaran/spinqobj/converter"
	"github.com/katalvlaran/spinqobj/internal/config"
	"github.com/katalvlaran/spinqobj/internal/export"
	"github.com/katalvlaran/spinqobj/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	envFile    string
	endianness string
	format     string
	workers    int
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "spinqobj",
		Short:         "Convert spin operators to dense matrices and superoperators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file with SPINQOBJ_* defaults")
	pf.StringVar(&a.endianness, "endianness", converter.DefaultEndianness.String(), "qubit order: little or big")
	pf.StringVar(&a.format, "format", string(export.Text), "output format: text, json or msgpack")
	pf.IntVar(&a.workers, "workers", converter.DefaultWorkers, "dissipator terms built concurrently")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error, disabled")

	root.AddCommand(newPauliCmd(a), newSystemCmd(a), newOpenCmd(a), newModelCmd(a))

	return root
}

// resolve loads the configuration and applies explicitly set flags on top.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("endianness") {
		if cfg.Endianness, err = converter.ParseEndianness(a.endianness); err != nil {
			return err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = export.ParseFormat(a.format); err != nil {
			return err
		}
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.NewWithWriter(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty}, a.stderr)

	return nil
}

// options translates the configuration into converter options.
func (a *app) options(spins int) []converter.Option {
	opts := []converter.Option{
		converter.WithEndianness(a.cfg.Endianness),
		converter.WithWorkers(a.cfg.Workers),
		converter.WithLogger(a.log),
	}
	if spins >= 0 {
		opts = append(opts, converter.WithNumberSpins(spins))
	}

	return opts
}

func (a *app) write(payloads ...export.Payload) error {
	return export.Write(a.stdout, a.cfg.Format, payloads...)
}
