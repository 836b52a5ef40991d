// Package packing solves the companion bin-packing problem: given a
// fixed per-bin capacity, pack items into as few bins as possible
// without exceeding it. It shares binner.Item with the partition
// package, but its algorithms open bins on demand
// rather than operating over a fixed bin count, so it is organized as
// its own package with its own Options/Result rather than another
// partition.Algorithm.
package packing
