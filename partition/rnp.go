package partition

import "github.com/prtpy-go/prtpy/binner"

// runRNP is Recursive Number Partitioning: when numBins is even, split
// the items into two balanced halves with an exact 2-way
// CompleteKarmarkarKarp search and recurse numBins/2 on each half;
// otherwise fall back to SNP's one-bin-at-a-time peeling.
func runRNP(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error) {
	if numBins <= 2 {
		subBn := binner.New(bn.Flavor, numBins, bn.ValueOf)
		return runCompleteKarmarkarKarp(subBn, items, numBins, opts)
	}
	if numBins%2 != 0 {
		return runSNP(bn, items, numBins, opts)
	}

	half := numBins / 2

	// Splitting needs item identities regardless of the outer flavor, so
	// the 2-way split always runs with FlavorContents.
	splitBn := binner.New(binner.FlavorContents, 2, bn.ValueOf)
	twoWay, timedOutSplit, err := runCompleteKarmarkarKarp(splitBn, items, 2, opts)
	if err != nil {
		return binner.BinsArray{}, false, err
	}
	groups, err := splitBn.Partition(twoWay)
	if err != nil {
		return binner.BinsArray{}, false, err
	}

	leftBins, timedOutLeft, err := runRNP(bn, groups[0], half, opts)
	if err != nil {
		return binner.BinsArray{}, false, err
	}
	rightBins, timedOutRight, err := runRNP(bn, groups[1], half, opts)
	if err != nil {
		return binner.BinsArray{}, false, err
	}

	combined, err := bn.ConcatenateBins(leftBins, rightBins)
	if err != nil {
		return binner.BinsArray{}, false, err
	}
	return combined, timedOutSplit || timedOutLeft || timedOutRight, nil
}
