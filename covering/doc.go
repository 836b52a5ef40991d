// Package covering solves the dual of bin packing: given a per-bin
// threshold, open as many bins as possible such that every opened bin's
// sum reaches at least the threshold, using each item at most once.
// Items that cannot be placed in any covered bin are returned as
// leftovers rather than discarded silently.
package covering
