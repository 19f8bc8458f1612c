//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tnet

import (
	"math"
	"sort"

	"github.com/akratos/themestream/internal/gen"
	"github.com/akratos/themestream/internal/str"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

const (
	// Louvain is stochastic; a pinned source keeps rebuilds of the same window identical
	COMMUNITYSEED = 1

	PAGERANKDAMP = 0.85
	PAGERANKTOL  = 1e-6

	LOUVAINRESOLUTION = 1.0
)

// Build - one graph per window present in the edge set; returns the two longitudinal tables
// (per-node centrality history, per-window topology history) sorted by window for readability;
// callers must not rely on row order for correctness
//
// a window with zero retained edges contributes no rows at all: it is skipped, not padded
func Build(prev []str.PrevalenceRow, edges []str.AssociationEdge) ([]str.CentralityRecord, []str.TopologyRecord) {
	bywindow := make(map[int][]str.AssociationEdge)
	for _, e := range edges {
		bywindow[e.Window] = append(bywindow[e.Window], e)
	}

	mass := make(map[int]map[int]float64)
	for _, p := range prev {
		if _, ok := mass[p.Window]; !ok {
			mass[p.Window] = make(map[int]float64)
		}
		mass[p.Window][p.Topic] += p.Mass
	}

	var centrality []str.CentralityRecord
	var topology []str.TopologyRecord

	for _, w := range gen.IntMapKeysIntoSortedSlice(bywindow) {
		cc, tt := windownetwork(w, bywindow[w], mass[w])
		centrality = append(centrality, cc...)
		topology = append(topology, tt)
	}

	return centrality, topology
}

// windownetwork - assemble one window's graph and measure it
func windownetwork(window int, edges []str.AssociationEdge, mass map[int]float64) ([]str.CentralityRecord, str.TopologyRecord) {
	// a topic appears only if it participates in at least one retained association
	topicset := make(map[int]struct{})
	for _, e := range edges {
		topicset[e.A] = struct{}{}
		topicset[e.B] = struct{}{}
	}
	topics := make([]int, 0, len(topicset))
	for t := range topicset {
		topics = append(topics, t)
	}
	sort.Ints(topics)

	// three views of the same structure:
	// weighted (|correlation| = link strength) for communities, modularity and pagerank;
	// reciprocal (1/|correlation| = travel cost) for the distance-based centralities;
	// bare for the weight-agnostic topology suite
	weighted := simple.NewWeightedUndirectedGraph(0, 0)
	recip := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	bare := simple.NewUndirectedGraph()
	directed := simple.NewWeightedDirectedGraph(0, 0)

	for _, t := range topics {
		n := simple.Node(int64(t))
		weighted.AddNode(n)
		recip.AddNode(n)
		bare.AddNode(n)
		directed.AddNode(n)
	}

	adjacency := make(map[int]map[int]struct{}, len(topics))
	for _, t := range topics {
		adjacency[t] = make(map[int]struct{})
	}

	for _, e := range edges {
		f := simple.Node(int64(e.A))
		t := simple.Node(int64(e.B))
		w := math.Abs(e.Correlation)

		weighted.SetWeightedEdge(simple.WeightedEdge{F: f, T: t, W: w})
		recip.SetWeightedEdge(simple.WeightedEdge{F: f, T: t, W: 1.0 / w})
		bare.SetEdge(simple.Edge{F: f, T: t})
		directed.SetWeightedEdge(simple.WeightedEdge{F: f, T: t, W: w})
		directed.SetWeightedEdge(simple.WeightedEdge{F: t, T: f, W: w})

		adjacency[e.A][e.B] = struct{}{}
		adjacency[e.B][e.A] = struct{}{}
	}

	communities := community.Modularize(weighted, LOUVAINRESOLUTION, rand.NewSource(COMMUNITYSEED)).Communities()
	labels := communitylabels(communities)

	shortrecip := path.DijkstraAllPaths(recip)
	betweenness := network.BetweennessWeighted(recip, shortrecip)
	closeness := network.Closeness(recip, shortrecip)
	pagerank := network.PageRank(directed, PAGERANKDAMP, PAGERANKTOL)

	records := make([]str.CentralityRecord, 0, len(topics))
	for _, t := range topics {
		id := int64(t)
		records = append(records, str.CentralityRecord{
			Window:      window,
			Topic:       t,
			Community:   labels[t],
			Degree:      len(adjacency[t]),
			Betweenness: betweenness[id],
			Closeness:   closeness[id],
			PageRank:    pagerank[id],
			Prevalence:  mass[t],
		})
	}

	// count from the adjacency, not the input: a repeated pair is still one edge
	nedges := 0
	for _, t := range topics {
		nedges += len(adjacency[t])
	}
	nedges /= 2

	topo := topologyForWindow(window, nedges, topics, adjacency, bare, weighted, communities)

	return records, topo
}

// communitylabels - discrete labels for the detected partition; communities are numbered
// by their smallest member so identical partitions always get identical labels
func communitylabels(communities [][]graph.Node) map[int]int {
	type comm struct {
		min     int
		members []int
	}
	cc := make([]comm, 0, len(communities))
	for _, nodes := range communities {
		members := make([]int, 0, len(nodes))
		min := math.MaxInt
		for _, n := range nodes {
			t := int(n.ID())
			members = append(members, t)
			if t < min {
				min = t
			}
		}
		cc = append(cc, comm{min: min, members: members})
	}
	sort.Slice(cc, func(i, j int) bool { return cc[i].min < cc[j].min })

	labels := make(map[int]int)
	for label, c := range cc {
		for _, t := range c.members {
			labels[t] = label
		}
	}
	return labels
}
