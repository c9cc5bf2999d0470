package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cachelab/cachesim/sim"
	"github.com/cachelab/cachesim/sim/workload"
)

// loadAddresses resolves the address stream from the CLI flags: an explicit
// trace file, or a synthetic stream from a YAML trace spec.
func loadAddresses() ([]uint64, error) {
	switch {
	case traceFile != "" && workloadFile != "":
		return nil, fmt.Errorf("--trace-file and --workload are mutually exclusive")
	case traceFile != "":
		return ParseTraceFile(traceFile)
	case workloadFile != "":
		spec, err := workload.LoadTraceSpec(workloadFile)
		if err != nil {
			return nil, err
		}
		if spec.Seed == 0 {
			spec.Seed = seed
		}
		gen, err := workload.NewGenerator(*spec, sim.NewWorkloadRNG(spec.Seed))
		if err != nil {
			return nil, err
		}
		return gen.Addresses(), nil
	default:
		return nil, fmt.Errorf("either --trace-file or --workload is required")
	}
}

// ParseTraceFile reads one address per line, decimal or 0x-prefixed hex.
// Blank lines and lines starting with '#' are skipped.
func ParseTraceFile(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer f.Close()

	var addrs []uint64
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addr, err := strconv.ParseUint(line, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("trace file line %d: invalid address %q: %w", lineNo, line, err)
		}
		addrs = append(addrs, addr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace file: %w", err)
	}
	return addrs, nil
}
