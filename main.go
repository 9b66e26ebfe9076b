package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yumyai/atacrna/internal/config"
	"github.com/yumyai/atacrna/logger"
)

// Set at build time.
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app is the state shared by subcommands once the root pre-run has resolved
// the configuration.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "atacrna",
		Short:         "Gene track and ATAC/RNA correlation viewer",
		Long:          `atacrna serves interactive gene-track and ATAC vs RNA correlation figures for zebrafish timepoint data.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadDotEnv()

			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if err := logger.InitLogger(cfg.LogLevel); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = logger.Sync()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .atacrna.yaml in . or $HOME)")
	flags.String("data", config.DefaultDataDir, "data directory (env ATACRNA_DATA)")
	flags.String("log-level", config.DefaultLevel, "log level: debug, info, warn, error")
	flags.String("default-gene", config.DefaultGene, "gene preselected in every dropdown")
	for _, name := range []string{"config", "data", "log-level", "default-gene"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newServeCmd(a),
		newImportCmd(a),
		newCorrelationsCmd(a),
		newVersionCmd(),
	)
	return root
}
