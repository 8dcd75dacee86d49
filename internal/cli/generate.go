package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		processes int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random workload as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("processes") {
				processes = cfg.NumProcesses
			}

			workload, err := generator(seed).Generate(processes)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(workload)
		},
	}

	cmd.Flags().IntVarP(&processes, "processes", "p", 20, "Number of processes")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	return cmd
}
