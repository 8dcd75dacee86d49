package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"sched-sim/config"
	"sched-sim/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger hclog.Logger
)

// NewRootCmd creates the root command for the sched-sim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sched-sim",
		Short: "Process scheduling and load balancing simulator",
		Long: "sched-sim simulates FCFS, SJN, Round Robin and Priority scheduling of a\n" +
			"random workload spread over a set of worker nodes and compares the results.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded

			level, format := cfg.LogLevel, cfg.LogFormat
			if cmd.Flags().Changed("log-level") {
				level = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				format = flagLogFormat
			}
			if flagDebug {
				level = "debug"
			}
			logger = logging.NewWithWriter("sched-sim", level, format, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(),
		newSimulateCmd(),
		newGenerateCmd(),
	)

	return root
}

// loadConfig reads an explicit --config file, or falls back to the process
// wide config. The result is a copy so flag overrides stay local.
func loadConfig(path string) (*config.SchedulerConfig, error) {
	var (
		shared *config.SchedulerConfig
		err    error
	)
	if path != "" {
		shared, err = config.Load(path)
	} else {
		shared, err = config.GetSchedulerConfig()
	}
	if err != nil {
		return nil, err
	}
	c := *shared
	return &c, nil
}
