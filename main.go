package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"colorflow/config"
	"colorflow/grade"
	"colorflow/parallel"
	"colorflow/swatch"
)

type CLI struct {
	Config   string `help:"TOML configuration file" type:"path"`
	Workers  int    `help:"Number of workers, 0 uses the configured count or one per CPU" default:"0"`
	LogLevel string `help:"Log level, overrides the configured one" enum:"debug,info,warn,error,default" default:"default"`

	Grade   grade.CLICmd      `cmd:"" help:"Grade every image of a folder"`
	Convert swatch.ConvertCmd `cmd:"" help:"Convert a color to another space"`
	Blend   swatch.BlendCmd   `cmd:"" help:"Blend a perceptual gradient between two colors"`
	List    swatch.ListCmd    `cmd:"" help:"List configured swatches or known color spaces"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("colorflow"),
		kong.Description("Color conversion and grading toolkit."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	level := cfg.LogLevel
	if cli.LogLevel != "default" {
		if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
			slog.Error("invalid log level", "level", cli.LogLevel, "error", err)
			os.Exit(1)
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	workers := cli.Workers
	if workers == 0 {
		workers = cfg.Workers
	}
	pool := parallel.Start(workers)
	logger.Debug("running", "command", kctx.Command(), "workers", pool.Size())

	err = kctx.Run(pool, cfg, logger)
	pool.Wait(true)
	kctx.FatalIfErrorf(err)
}
