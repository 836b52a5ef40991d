package partition

import "github.com/prtpy-go/prtpy/binner"

// tryTrivial handles the shared k=0/k=1/k>=n short-circuit: k=0 is only
// valid for zero items; k=1 places everything in the single bin; k>=n
// places each item alone, any order, with leftover bins left empty.
// handled is false when none of these apply and the caller must run a
// real algorithm.
func tryTrivial(bn *binner.Binner, items []binner.Item, numBins int) (result binner.BinsArray, handled bool, err error) {
	switch {
	case numBins == 0:
		if len(items) > 0 {
			return binner.BinsArray{}, true, ErrInvalidInput
		}
		return bn.NewBins(0), true, nil

	case numBins == 1:
		b := bn.NewBins(1)
		for _, it := range items {
			b, err = bn.AddItemToBin(b, it, 0)
			if err != nil {
				return binner.BinsArray{}, true, err
			}
		}
		return b, true, nil

	case numBins >= len(items):
		b := bn.NewBins(numBins)
		for i, it := range items {
			b, err = bn.AddItemToBin(b, it, i)
			if err != nil {
				return binner.BinsArray{}, true, err
			}
		}
		return b, true, nil

	default:
		return binner.BinsArray{}, false, nil
	}
}
