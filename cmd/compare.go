package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cachelab/cachesim/sim"
	"github.com/cachelab/cachesim/sim/trace"
)

var comparePolicies []string

// compareCmd replays the identical address stream through one independent
// simulator per replacement policy and prints the results side by side.
// Instances share no state, so rows are directly comparable.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare replacement policies over the same address stream",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		addrs, err := loadAddresses()
		if err != nil {
			logrus.Fatalf("Unable to load address stream: %v", err)
		}

		m, err := sim.ParseMappingStrategy(mapping)
		if err != nil {
			logrus.Fatalf("Invalid cache configuration: %v", err)
		}

		fmt.Printf("=== Policy Comparison (%d accesses, %s, capacity %d) ===\n",
			len(addrs), m, cacheCapacity)
		fmt.Printf("%-8s %8s %8s %12s %10s %8s\n",
			"policy", "hits", "misses", "compulsory", "capacity", "hit%")

		for _, name := range comparePolicies {
			p, err := sim.ParseReplacementPolicy(name)
			if err != nil {
				logrus.Fatalf("Invalid policy %q: %v", name, err)
			}
			config := sim.Config{
				CacheCapacity: cacheCapacity,
				SetSize:       setSize,
				AddressBits:   addressBits,
				OffsetBits:    offsetBits,
				Mapping:       m,
				Policy:        p,
				Seed:          seed,
			}
			simulator, err := sim.NewSimulator(config)
			if err != nil {
				logrus.Fatalf("Invalid cache configuration: %v", err)
			}

			state := simulator.Snapshot()
			for _, addr := range addrs {
				state, err = simulator.Process(addr)
				if err != nil {
					logrus.Fatalf("Access failed under policy %s: %v", p, err)
				}
			}

			sum := trace.Summarize(state.History)
			fmt.Printf("%-8s %8d %8d %12d %10d %7.2f%%\n",
				p, sum.Hits, sum.Misses, sum.CompulsoryMisses, sum.CapacityMisses, sum.HitRate*100)
		}
	},
}
