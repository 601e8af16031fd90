package matrix

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/pkg/errors"

	"github.com/pagelab/ppagerank/collective"
)

// Edge is one directed edge of the input graph, already oriented so that
// From is the node whose rank mass flows along the edge. When the input
// file stores the transposed matrix (edge i→j at row j), the loader
// swaps the coordinates per line instead of transposing anything in
// memory.
type Edge struct {
	From, To int64
}

// LoadEdges reads a graph resource (a local path or an http(s) URL) and
// returns its edges plus the node count. Files ending in .dot are parsed
// as Graphviz DOT; anything else is treated as a whitespace- or
// comma-separated edge list.
func LoadEdges(resource string, trans bool) ([]Edge, int64, error) {
	var contents []byte
	var err error
	if strings.HasPrefix(resource, "http") {
		var resp *http.Response
		resp, err = http.Get(resource)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "could not load network resource %s", resource)
		}
		defer resp.Body.Close()
		contents, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, 0, errors.Wrap(err, "could not read response body")
		}
	} else {
		contents, err = os.ReadFile(resource)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "could not read graph at %s", resource)
		}
	}
	if strings.HasSuffix(resource, ".dot") {
		return ParseDOT(contents, trans)
	}
	return ParseEdgeList(contents, trans)
}

// ParseEdgeList parses "from to" lines. Comment lines starting with #
// or // are skipped; node ids are zero-based and the dimension is the
// largest id seen plus one.
func ParseEdgeList(contents []byte, trans bool) ([]Edge, int64, error) {
	var edges []Edge
	var n int64
	lines := strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n")
	for _, line := range lines {
		from, to, skip, err := convertLine(line)
		if err != nil {
			return nil, 0, err
		}
		if skip {
			continue
		}
		if from < 0 || to < 0 {
			return nil, 0, errors.Errorf("negative node id in line %q", line)
		}
		if trans {
			from, to = to, from
		}
		if from >= n {
			n = from + 1
		}
		if to >= n {
			n = to + 1
		}
		edges = append(edges, Edge{From: from, To: to})
	}
	return edges, n, nil
}

func convertLine(line string) (int64, int64, bool, error) {
	// Skip comment lines
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || strings.TrimSpace(line) == "" {
		return 0, 0, true, nil
	}
	// Convert line to csv format
	line = strings.Replace(strings.TrimSpace(line), " ", ",", 1)
	line = strings.Replace(line, "\t", ",", 1)
	tokens := strings.Split(line, ",")
	if len(tokens) < 2 {
		return 0, 0, false, errors.Errorf("could not split line %q", line)
	}
	from, err := strconv.ParseInt(strings.TrimSpace(tokens[0]), 10, 64)
	if err != nil {
		return 0, 0, false, errors.Errorf("could not convert FromNode %s", tokens[0])
	}
	to, err := strconv.ParseInt(strings.TrimSpace(tokens[1]), 10, 64)
	if err != nil {
		return 0, 0, false, errors.Errorf("could not convert ToNode %s", tokens[1])
	}
	return from, to, false, nil
}

// ParseDOT parses a Graphviz DOT digraph. Node names that are all
// integers are used as ids directly; otherwise ids are assigned in
// traversal order, which is identical on every rank since each rank
// parses the same bytes.
func ParseDOT(contents []byte, trans bool) ([]Edge, int64, error) {
	g, err := graphviz.ParseBytes(contents)
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not parse DOT graph")
	}
	ids := make(map[string]int64)
	numeric := true
	var names []string
	for node := g.FirstNode(); node != nil; node = g.NextNode(node) {
		name := node.Name()
		names = append(names, name)
		if _, err := strconv.ParseInt(name, 10, 64); err != nil {
			numeric = false
		}
	}
	var n int64
	if numeric {
		for _, name := range names {
			id, _ := strconv.ParseInt(name, 10, 64)
			if id < 0 {
				return nil, 0, errors.Errorf("negative node id %s in DOT graph", name)
			}
			ids[name] = id
			if id >= n {
				n = id + 1
			}
		}
	} else {
		for _, name := range names {
			if _, ok := ids[name]; !ok {
				ids[name] = n
				n++
			}
		}
	}
	var edges []Edge
	for node := g.FirstNode(); node != nil; node = g.NextNode(node) {
		for e := g.FirstOut(node); e != nil; e = g.NextOut(e) {
			from := ids[node.Name()]
			to := ids[e.Node().Name()]
			if trans {
				from, to = to, from
			}
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges, n, nil
}

// BuildBlock keeps the edges whose source this rank owns and assembles
// the local CSR block with unit weights; NewBlock scales them
// row-stochastic.
func BuildBlock(edges []Edge, layout collective.Layout, rank int) (*Block, error) {
	lo, hi := layout.Range(rank)
	var local []Entry
	for _, e := range edges {
		if e.From < lo || e.From >= hi {
			continue
		}
		local = append(local, Entry{Row: e.From, Col: e.To, Val: 1})
	}
	return NewBlock(layout, rank, local)
}

// Describe renders the block's identity for log lines.
func (b *Block) Describe() string {
	lo, hi := b.Rows()
	return fmt.Sprintf("rank %d rows [%d, %d) nnz %d", b.rank, lo, hi, b.NNZ())
}
