package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sched-sim/internal/cluster"
	"sched-sim/internal/metrics"
	"sched-sim/internal/schedulers"
	"sched-sim/internal/simulation"
	"sched-sim/internal/workload"
)

const allAlgorithms = "all"

type simulateOptions struct {
	nodes       int
	processes   int
	algorithm   string
	quantum     int
	migrate     bool
	seed        int64
	distributed bool
	json        bool
}

// row is one line of the comparison table.
type row struct {
	Algorithm string          `json:"algorithm"`
	TotalTime int             `json:"totalTime"`
	Metrics   metrics.Metrics `json:"metrics"`
}

func newSimulateCmd() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate a workload, place it on nodes and compare scheduling policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("nodes") {
				opts.nodes = cfg.NumNodes
			}
			if !flags.Changed("processes") {
				opts.processes = cfg.NumProcesses
			}
			if !flags.Changed("quantum") {
				opts.quantum = cfg.RoundRobinTimeQuantum
			}
			if !flags.Changed("migrate") {
				opts.migrate = cfg.EnableMigration
			}
			return runSimulate(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", 3, "Number of worker nodes")
	cmd.Flags().IntVarP(&opts.processes, "processes", "p", 20, "Number of processes")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", allAlgorithms, "fcfs, sjn, rr, priority or all")
	cmd.Flags().IntVarP(&opts.quantum, "quantum", "q", 2, "Round robin time quantum")
	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "Rebalance nodes after the initial assignment")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&opts.distributed, "distributed", false, "Run each node's partition on its own worker")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print results as JSON")
	return cmd
}

func runSimulate(cmd *cobra.Command, opts simulateOptions) error {
	policies, err := policiesFor(opts.algorithm, opts.quantum)
	if err != nil {
		return err
	}

	setup, err := simulation.Prepare(generator(opts.seed), opts.nodes, opts.processes, opts.migrate)
	if err != nil {
		return err
	}
	logger.Info("workload placed", "nodes", len(setup.Nodes), "processes", len(setup.Processes), "migrations", len(setup.Moves))

	rows := make([]row, 0, len(policies))
	if opts.distributed {
		coordinator := cluster.NewCoordinator(logger)
		for _, policy := range policies {
			report, err := coordinator.Run(cmd.Context(), setup.Nodes, policy)
			if err != nil {
				return err
			}
			rows = append(rows, row{Algorithm: string(policy.Algorithm), TotalTime: report.TotalTime, Metrics: report.Metrics})
		}
	} else {
		outcomes, err := evaluate(policies, setup, opts.quantum)
		if err != nil {
			return err
		}
		for _, o := range outcomes {
			rows = append(rows, row{Algorithm: string(o.Algorithm), TotalTime: o.TotalTime, Metrics: o.Metrics})
		}
	}

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return printTable(cmd.OutOrStdout(), rows)
}

// evaluate runs the policies on a single timeline. A full comparison goes
// through EvaluateAll so the four runs execute concurrently.
func evaluate(policies []schedulers.Policy, setup simulation.Setup, quantum int) ([]schedulers.Outcome, error) {
	if len(policies) == len(schedulers.Algorithms) {
		return schedulers.EvaluateAll(setup.Processes, setup.Nodes, quantum)
	}

	outcomes := make([]schedulers.Outcome, 0, len(policies))
	for _, policy := range policies {
		outcome, err := schedulers.Evaluate(policy, setup.Processes, setup.Nodes)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func policiesFor(algorithm string, quantum int) ([]schedulers.Policy, error) {
	if strings.EqualFold(algorithm, allAlgorithms) {
		policies := make([]schedulers.Policy, 0, len(schedulers.Algorithms))
		for _, a := range schedulers.Algorithms {
			policy, err := schedulers.NewPolicy(string(a), quantum)
			if err != nil {
				return nil, err
			}
			policies = append(policies, policy)
		}
		return policies, nil
	}

	policy, err := schedulers.NewPolicy(algorithm, quantum)
	if err != nil {
		return nil, err
	}
	return []schedulers.Policy{policy}, nil
}

func printTable(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tTOTAL\tAVG WAIT\tAVG TURNAROUND\tAVG RESPONSE\tTHROUGHPUT\tLOAD BALANCE\tCPU UTILIZATION")
	for _, r := range rows {
		m := r.Metrics
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.3f\t%.3f\t%s\n",
			r.Algorithm, r.TotalTime, m.AverageWaitTime, m.AverageTurnaroundTime, m.AverageResponseTime,
			m.Throughput, m.LoadBalance, formatUtilization(m.CpuUtilization))
	}
	return tw.Flush()
}

func formatUtilization(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.0f%%", v*100)
	}
	return strings.Join(parts, " ")
}

func generator(seed int64) *workload.Generator {
	if seed == 0 {
		return workload.Default()
	}
	return workload.NewGenerator(rand.NewSource(seed))
}
