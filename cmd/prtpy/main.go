// Command prtpy is a thin demonstrator over the partition package:
// parse a comma-separated list of values and a bin count, run one
// partitioning algorithm, and print the resulting bins and their sums.
//
// Example:
//
//	prtpy -algo cga -bins 3 -values 4,5,6,7,8,9
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/prtpy-go/prtpy/binner"
	"github.com/prtpy-go/prtpy/partition"
)

var algoNames = map[string]partition.Algorithm{
	"greedy":        partition.Greedy,
	"roundrobin":    partition.RoundRobin,
	"bidirectional": partition.BidirectionalBalanced,
	"multifit":      partition.MultiFit,
	"kk":            partition.KarmarkarKarp,
	"ckk":           partition.CompleteKarmarkarKarp,
	"cga":           partition.CompleteGreedy,
	"dp":            partition.DynamicProgramming,
	"snp":           partition.SequentialNumberPartitioning,
	"rnp":           partition.RecursiveNumberPartitioning,
	"ilp":           partition.IntegerProgramming,
	"cbldm":         partition.CBLDM,
}

func main() {
	var (
		algoFlag   = flag.String("algo", "cga", "partitioning algorithm: "+algoList())
		binsFlag   = flag.Int("bins", 2, "number of bins")
		valuesFlag = flag.String("values", "", "comma-separated item values")
	)
	flag.Parse()

	algo, ok := algoNames[strings.ToLower(*algoFlag)]
	if !ok {
		log.Fatalf("prtpy: unknown algorithm %q (choices: %s)", *algoFlag, algoList())
	}

	values, err := parseValues(*valuesFlag)
	if err != nil {
		log.Fatalf("prtpy: %v", err)
	}

	opts := partition.DefaultOptions()
	opts.OutputShape = partition.PartitionAndSums

	res, err := partition.Partition(algo, *binsFlag, partition.ItemsFromValues(values), opts)
	if err != nil {
		log.Fatalf("prtpy: %v", err)
	}

	for i, bin := range res.Partition {
		fmt.Printf("bin %d (sum %.4g): %v\n", i, res.Sums[i], itemValues(bin))
	}
	if res.TimedOut {
		fmt.Println("note: search stopped early on its time limit; result is best-so-far, not proven optimal")
	}
}

func algoList() string {
	names := make([]string, 0, len(algoNames))
	for name := range algoNames {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func parseValues(csv string) ([]float64, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, fmt.Errorf("no values given, pass -values=1,2,3")
	}
	fields := strings.Split(csv, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

func itemValues(items []binner.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = strconv.FormatFloat(it.Value, 'g', -1, 64)
	}
	return out
}
