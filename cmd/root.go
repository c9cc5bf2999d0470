package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cachelab/cachesim/sim"
	"github.com/cachelab/cachesim/sim/trace"
)

var (
	// CLI flags for cache geometry and policy
	cacheCapacity int    // Number of block slots in the cache
	setSize       int    // Blocks per set (set-associative mapping only)
	addressBits   int    // Address space width in bits
	offsetBits    int    // Block offset width in bits
	mapping       string // Mapping strategy
	policy        string // Replacement policy
	seed          int64  // Seed for the random replacement policy
	logLevel      string // Log verbosity level

	// CLI flags for the address stream
	traceFile    string // Address trace file, one address per line
	workloadFile string // YAML trace spec for synthetic workloads
	historyTail  int    // Number of most recent access records to print
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Deterministic cache mapping and replacement-policy simulator",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an address stream through one cache configuration",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		config, err := buildConfig()
		if err != nil {
			logrus.Fatalf("Invalid cache configuration: %v", err)
		}
		simulator, err := sim.NewSimulator(config)
		if err != nil {
			logrus.Fatalf("Unable to construct simulator: %v", err)
		}

		addrs, err := loadAddresses()
		if err != nil {
			logrus.Fatalf("Unable to load address stream: %v", err)
		}

		logrus.Infof("Starting simulation: capacity=%d, mapping=%s, policy=%s, accesses=%d",
			config.CacheCapacity, config.Mapping, config.Policy, len(addrs))

		state := simulator.Snapshot()
		for _, addr := range addrs {
			state, err = simulator.Process(addr)
			if err != nil {
				logrus.Fatalf("Access failed: %v", err)
			}
			rec := state.History[0]
			logrus.Debugf("addr=%d tag=%d setOrIndex=%d offset=%d outcome=%s kind=%s",
				rec.Address, rec.Tag, rec.SetOrIndex, rec.Offset, rec.Outcome, rec.MissKind)
		}

		printSummary(trace.Summarize(state.History))
		if historyTail > 0 {
			printHistory(state.History, historyTail)
		}
	},
}

// buildConfig assembles a sim.Config from the CLI flags.
func buildConfig() (sim.Config, error) {
	m, err := sim.ParseMappingStrategy(mapping)
	if err != nil {
		return sim.Config{}, err
	}
	p, err := sim.ParseReplacementPolicy(policy)
	if err != nil {
		return sim.Config{}, err
	}
	return sim.Config{
		CacheCapacity: cacheCapacity,
		SetSize:       setSize,
		AddressBits:   addressBits,
		OffsetBits:    offsetBits,
		Mapping:       m,
		Policy:        p,
		Seed:          seed,
	}, nil
}

// printSummary displays aggregated hit/miss counters at the end of a run.
// The "both" row counts first-time misses that also evicted a block; each
// of those is included in both the compulsory and capacity totals.
func printSummary(sum trace.Summary) {
	fmt.Println("=== Cache Simulation Metrics ===")
	fmt.Printf("Accesses          : %d\n", sum.Accesses)
	fmt.Printf("Hits              : %d\n", sum.Hits)
	fmt.Printf("Misses            : %d\n", sum.Misses)
	fmt.Printf("Compulsory Misses : %d\n", sum.CompulsoryMisses)
	fmt.Printf("Capacity Misses   : %d\n", sum.CapacityMisses)
	fmt.Printf("Both (dual-count) : %d\n", sum.BothMisses)
	fmt.Printf("Hit Rate          : %.2f%%\n", sum.HitRate*100)
}

// printHistory displays the n most recent access records.
func printHistory(records []trace.AccessRecord, n int) {
	if n > len(records) {
		n = len(records)
	}
	fmt.Printf("=== Last %d Accesses (most recent first) ===\n", n)
	for _, rec := range records[:n] {
		kind := string(rec.MissKind)
		if kind == "" {
			kind = "-"
		}
		fmt.Printf("#%-6d addr=%-10d tag=%-8d set=%-4d %-4s %s\n",
			rec.Sequence, rec.Address, rec.Tag, rec.SetOrIndex, rec.Outcome, kind)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerCacheFlags attaches the shared cache and stream flags to a command.
func registerCacheFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&cacheCapacity, "capacity", 8, "Number of block slots in the cache (power of two)")
	cmd.Flags().IntVar(&setSize, "set-size", 2, "Blocks per set (set-associative mapping only)")
	cmd.Flags().IntVar(&addressBits, "address-bits", 16, "Address space width in bits")
	cmd.Flags().IntVar(&offsetBits, "offset-bits", 0, "Block offset width in bits")
	cmd.Flags().StringVar(&mapping, "mapping", "direct", "Mapping strategy (direct, fully-associative, set-associative)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the random replacement policy")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&traceFile, "trace-file", "", "Address trace file, one decimal or 0x-hex address per line")
	cmd.Flags().StringVar(&workloadFile, "workload", "", "YAML trace spec for synthetic address streams")
}

// init sets up CLI flags and subcommands
func init() {
	registerCacheFlags(runCmd)
	runCmd.Flags().StringVar(&policy, "policy", "lru", "Replacement policy (fifo, lru, lfu, random)")
	runCmd.Flags().IntVar(&historyTail, "history", 0, "Print the N most recent access records after the run")

	registerCacheFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", []string{"fifo", "lru", "lfu", "random"},
		"Comma-separated replacement policies to compare")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
