//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tnet

import (
	"math"
	"sort"

	"github.com/akratos/themestream/internal/str"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/path"
)

//
// WHOLE-GRAPH TOPOLOGY: weight-agnostic except modularity
//

// topologyForWindow - the per-window TopologyRecord
//
// disconnected graphs use the finite-pairs convention throughout: unreachable pairs are ignored
// when computing diameter, radius and mean distance; the same rule applies to all three
func topologyForWindow(window int, nedges int, topics []int, adjacency map[int]map[int]struct{},
	bare graph.Undirected, weighted graph.Undirected, communities [][]graph.Node) str.TopologyRecord {

	n := len(topics)

	diameter, radius, meandist := distancestats(topics, bare)

	density := 0.0
	if n > 1 {
		density = 2.0 * float64(nedges) / (float64(n) * float64(n-1))
	}

	return str.TopologyRecord{
		Window:       window,
		Edges:        nedges,
		Nodes:        n,
		Diameter:     diameter,
		Radius:       radius,
		MeanDistance: meandist,
		Modularity:   community.Q(weighted, communities, LOUVAINRESOLUTION),
		Transitivity: transitivity(topics, adjacency),
		Density:      density,
	}
}

// distancestats - diameter, radius and mean geodesic distance over the finite shortest paths
func distancestats(topics []int, bare graph.Undirected) (float64, float64, float64) {
	shortest := path.DijkstraAllPaths(bare)

	diameter := 0.0
	radius := math.Inf(1)
	total := 0.0
	npairs := 0

	for _, u := range topics {
		eccentricity := 0.0
		for _, v := range topics {
			if u == v {
				continue
			}
			d := shortest.Weight(int64(u), int64(v))
			if math.IsInf(d, 1) {
				continue
			}
			if d > eccentricity {
				eccentricity = d
			}
			total += d
			npairs++
		}
		if eccentricity > diameter {
			diameter = eccentricity
		}
		if eccentricity < radius {
			radius = eccentricity
		}
	}

	meandist := 0.0
	if npairs > 0 {
		meandist = total / float64(npairs)
	}
	if math.IsInf(radius, 1) {
		radius = 0.0
	}

	return diameter, radius, meandist
}

// transitivity - the global clustering coefficient: 3 * triangles / connected triples
func transitivity(topics []int, adjacency map[int]map[int]struct{}) float64 {
	triangles := 0
	triples := 0

	for _, v := range topics {
		neighbors := make([]int, 0, len(adjacency[v]))
		for u := range adjacency[v] {
			neighbors = append(neighbors, u)
		}
		sort.Ints(neighbors)

		k := len(neighbors)
		triples += k * (k - 1) / 2

		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if _, ok := adjacency[neighbors[i]][neighbors[j]]; ok {
					triangles++
				}
			}
		}
	}

	if triples == 0 {
		return 0.0
	}
	// every triangle was counted once per corner
	return float64(triangles) / float64(triples)
}

//
// PREVALENCE
//

// PrevalenceFromDocTopics - per-window summed topic mass; an explicit grouped reduce over (window, topic)
func PrevalenceFromDocTopics(rows []str.DocTopicRow) []str.PrevalenceRow {
	sums := make(map[int]map[int]float64)
	for _, r := range rows {
		if _, ok := sums[r.Window]; !ok {
			sums[r.Window] = make(map[int]float64)
		}
		for topic, p := range r.Theta {
			sums[r.Window][topic] += p
		}
	}

	var out []str.PrevalenceRow
	for w, topics := range sums {
		for t, m := range topics {
			out = append(out, str.PrevalenceRow{Window: w, Topic: t, Mass: m})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Window != out[j].Window {
			return out[i].Window < out[j].Window
		}
		return out[i].Topic < out[j].Topic
	})

	return out
}
