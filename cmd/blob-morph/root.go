package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/blob-morph/config"
)

// runOpts holds the command-line flags shared by the root command and
// its subcommands.
type runOpts struct {
	configPath string
	debug      bool
	seed       uint64
	fps        int
	noAudio    bool
	loop       bool

	logger  *log.Logger
	logFile *os.File
}

func newRootCmd(opts *runOpts) *cobra.Command {
	root := &cobra.Command{
		Use:          "blob-morph <source-image> <target-image>",
		Short:        "blob-morph animates one image dissolving into another",
		Long:         `blob-morph samples two images into point clouds and plays a terminal animation where elastic blobs explode, drift apart, split, merge, and reassemble into the target image.`,
		Version:      version,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to tcell while a run is active, so
			// logs go to a file with --debug and nowhere otherwise.
			if !opts.debug {
				opts.logger = newLogger(io.Discard, log.InfoLevel)
				return nil
			}
			f, err := openLogFile("blob-morph.log")
			if err != nil {
				return fmt.Errorf("open debug log: %w", err)
			}
			opts.logFile = f
			opts.logger = newLogger(f, log.DebugLevel)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != nil {
				opts.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runAnimation(cmd.Context(), cfg, opts, args[0], args[1])
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("blob-morph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write debug logs to logs/blob-morph.log")

	root.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	root.Flags().IntVar(&opts.fps, "fps", 0, "frame rate override")
	root.Flags().BoolVar(&opts.noAudio, "no-audio", false, "disable sound cues")
	root.Flags().BoolVar(&opts.loop, "loop", false, "restart with the images swapped after each run")

	root.AddCommand(newSampleCmd(opts))

	return root
}

// loadConfig layers command-line overrides over the config file, then
// re-validates since an override can break a previously valid config.
func loadConfig(cmd *cobra.Command, opts *runOpts) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = opts.fps
	}
	if opts.noAudio {
		cfg.Audio = false
	}
	if opts.loop {
		cfg.Loop = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
