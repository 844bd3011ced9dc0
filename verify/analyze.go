package verify

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/freqassign/problem"
)

// FrequencyStat aggregates the nodes sitting on one frequency.
type FrequencyStat struct {
	Frequency int     `json:"frequency" yaml:"frequency"`
	Load      int     `json:"load" yaml:"load"`
	Cost      float64 `json:"cost" yaml:"cost"`
}

// NodeStat describes a single node under an assignment.
type NodeStat struct {
	Node      int     `json:"node" yaml:"node"`
	Frequency int     `json:"frequency" yaml:"frequency"`
	Cost      float64 `json:"cost" yaml:"cost"`
	Degree    int     `json:"degree" yaml:"degree"`
	Conflicts int     `json:"conflicts" yaml:"conflicts"`
}

// Analysis extends a Report with descriptive statistics. Nodes holding an
// out-of-range frequency are left out of every aggregate.
type Analysis struct {
	Report `json:"-" yaml:"-"`

	// Frequencies has one entry per frequency 0..k-1.
	Frequencies []FrequencyStat `json:"frequencies" yaml:"frequencies"`

	// Used is the number of frequencies with Load > 0.
	Used int `json:"used" yaml:"used"`

	// MostConflicted lists up to topK nodes touching at least one conflict,
	// by conflict count descending, ties by ascending node index.
	MostConflicted []NodeStat `json:"most_conflicted" yaml:"most_conflicted"`

	// MostExpensive lists up to topK nodes by cost descending, ties by
	// ascending node index.
	MostExpensive []NodeStat `json:"most_expensive" yaml:"most_expensive"`

	// MeanCost and StdDevCost describe the per-node cost distribution.
	MeanCost   float64 `json:"mean_cost" yaml:"mean_cost"`
	StdDevCost float64 `json:"stddev_cost" yaml:"stddev_cost"`

	// OnCheapest is the percentage of nodes assigned a frequency whose cost
	// equals their row minimum.
	OnCheapest float64 `json:"on_cheapest_pct" yaml:"on_cheapest_pct"`

	// LoadBalance is min load / max load over used frequencies, in percent.
	LoadBalance float64 `json:"load_balance_pct" yaml:"load_balance_pct"`
}

// Analyze verifies a and derives the statistics above. On a length mismatch
// only the Report is filled.
//
// Complexity: O(n log n + m + k).
func Analyze(p *problem.Problem, a problem.Assignment, topK int) Analysis {
	an := Analysis{Report: Verify(p, a)}
	if len(a) != p.N() {
		return an
	}
	if topK < 0 {
		topK = 0
	}

	var (
		k       = p.K()
		g       = p.Graph()
		perNode = make(map[int]int) // node -> conflicts touched
		nodes   = make([]NodeStat, 0, len(a))
		costs   = make([]float64, 0, len(a))
		optimal int
	)
	for _, e := range an.Conflicts() {
		perNode[e.I]++
		perNode[e.J]++
	}

	an.Frequencies = make([]FrequencyStat, k)
	for f := range an.Frequencies {
		an.Frequencies[f].Frequency = f
	}

	for i, f := range a {
		if f < 0 || f >= k {
			continue
		}
		c := p.Cost(i, f)
		an.Frequencies[f].Load++
		an.Frequencies[f].Cost += c
		costs = append(costs, c)
		if _, cheapest := p.Cheapest(i); c == cheapest {
			optimal++
		}
		nodes = append(nodes, NodeStat{Node: i, Frequency: f, Cost: c, Degree: g.Degree(i), Conflicts: perNode[i]})
	}

	loads := make([]float64, 0, k)
	for _, fs := range an.Frequencies {
		if fs.Load > 0 {
			an.Used++
			loads = append(loads, float64(fs.Load))
		}
	}
	if len(loads) > 0 {
		an.LoadBalance = 100 * floats.Min(loads) / floats.Max(loads)
	}

	switch len(costs) {
	case 0:
	case 1:
		an.MeanCost = costs[0]
	default:
		an.MeanCost, an.StdDevCost = stat.MeanStdDev(costs, nil)
	}
	if len(nodes) > 0 {
		an.OnCheapest = 100 * float64(optimal) / float64(len(nodes))
	}

	an.MostConflicted = topNodes(nodes, topK, func(x, y NodeStat) bool {
		return x.Conflicts > y.Conflicts
	}, func(s NodeStat) bool { return s.Conflicts > 0 })
	an.MostExpensive = topNodes(nodes, topK, func(x, y NodeStat) bool {
		return x.Cost > y.Cost
	}, nil)

	return an
}

// topNodes stable-sorts a filtered copy of nodes (already in index order) by
// less and keeps the first k.
func topNodes(nodes []NodeStat, k int, less func(x, y NodeStat) bool, keep func(NodeStat) bool) []NodeStat {
	out := make([]NodeStat, 0, len(nodes))
	for _, s := range nodes {
		if keep == nil || keep(s) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(x, y int) bool { return less(out[x], out[y]) })
	if len(out) > k {
		out = out[:k]
	}

	return out
}
