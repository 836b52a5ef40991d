// Package partition implements the multiway number-partitioning search
// engine: an adapter that normalizes caller input and dispatches to one
// of eleven algorithms (Greedy, RoundRobin, BidirectionalBalanced,
// MultiFit, KarmarkarKarp, CompleteKarmarkarKarp, CompleteGreedy,
// DynamicProgramming, SequentialNumberPartitioning,
// RecursiveNumberPartitioning, IntegerProgramming) plus the supplemental
// CBLDM, all built on the binner and objective packages.
//
// The entry point follows a validate-normalize-dispatch-project shape:
// validate input, normalize it, switch on the requested algorithm, then
// project the result through the requested output shape.
package partition
