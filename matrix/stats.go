package matrix

import (
	"github.com/pagelab/ppagerank/collective"
)

// Stats summarizes the distributed matrix the way the reporting layer
// prints it: global shape plus the spread of per-rank partition sizes.
type Stats struct {
	Rows, Cols   int64
	NNZ          int64
	MinLocalRows int64
	MaxLocalRows int64
	MinLocalNNZ  int64
	MaxLocalNNZ  int64
}

// CollectStats reduces the per-rank partition sizes across the group.
// Every rank must call it; all ranks receive the same totals.
func CollectStats(b *Block, red collective.Reducer) (Stats, error) {
	lo, hi := b.Rows()
	local := []float64{float64(hi - lo), float64(b.NNZ())}

	sums, err := red.AllReduce(collective.OpSum, local)
	if err != nil {
		return Stats{}, err
	}
	mins, err := red.AllReduce(collective.OpMin, local)
	if err != nil {
		return Stats{}, err
	}
	maxs, err := red.AllReduce(collective.OpMax, local)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Rows:         b.layout.N(),
		Cols:         b.layout.N(),
		NNZ:          int64(sums[1]),
		MinLocalRows: int64(mins[0]),
		MaxLocalRows: int64(maxs[0]),
		MinLocalNNZ:  int64(mins[1]),
		MaxLocalNNZ:  int64(maxs[1]),
	}, nil
}
