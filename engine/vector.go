package engine

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pagelab/ppagerank/collective"
)

// Uniform returns this rank's segment of the uniform distribution 1/n.
func Uniform(layout collective.Layout, rank int) []float64 {
	seg := make([]float64, layout.LocalLen(rank))
	v := 1.0 / float64(layout.N())
	for i := range seg {
		seg[i] = v
	}
	return seg
}

// LoadPersonalization reads a teleportation vector, one value per line
// in node order, and returns this rank's segment. Values must be
// non-negative with a positive total; the vector is normalized to sum
// to one. A length mismatch against the matrix dimension is a setup
// error.
func LoadPersonalization(path string, layout collective.Layout, rank int) ([]float64, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read personalization vector at %s", path)
	}
	var full []float64
	for _, line := range strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, errors.Errorf("could not convert personalization entry %q", line)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Errorf("invalid personalization entry %g", v)
		}
		full = append(full, v)
	}
	if int64(len(full)) != layout.N() {
		return nil, errors.Errorf("personalization vector has %d entries, matrix has %d rows", len(full), layout.N())
	}
	sum := 0.0
	for _, v := range full {
		sum += v
	}
	if sum <= 0 {
		return nil, errors.New("personalization vector sums to zero")
	}
	lo, hi := layout.Range(rank)
	seg := make([]float64, hi-lo)
	for i := range seg {
		seg[i] = full[lo+int64(i)] / sum
	}
	return seg, nil
}
