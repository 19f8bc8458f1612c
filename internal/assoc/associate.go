//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package assoc

import (
	"fmt"
	"math"
	"sort"

	"github.com/akratos/themestream/internal/gen"
	"github.com/akratos/themestream/internal/str"
	"github.com/akratos/themestream/internal/vv"
	"gonum.org/v1/gonum/stat"
)

//
// TOPIC ASSOCIATION: per-window rank correlation of the topic columns
//

// Associate - partition the document-topic table by window; per window keep every topic pair whose
// Spearman correlation magnitude reaches minassoc; the union over windows comes back sorted by
// (window, a, b) for readability only
//
// windows with too few documents or fewer than two topics yield no edges: a valid empty outcome
func Associate(rows []str.DocTopicRow, minassoc float64) ([]str.AssociationEdge, error) {
	// a magnitude bound below zero is meaningless; one above 1 merely filters every pair
	if minassoc < 0 {
		return nil, fmt.Errorf("Associate() needs a non-negative threshold, got %f: %w", minassoc, str.ErrInvalidArgument)
	}

	bywindow := make(map[int][]str.DocTopicRow)
	for _, r := range rows {
		bywindow[r.Window] = append(bywindow[r.Window], r)
	}

	perwindow := make([][]str.AssociationEdge, 0, len(bywindow))
	for w, part := range bywindow {
		perwindow = append(perwindow, windowedges(w, part, minassoc))
	}
	edges := gen.Flatten(perwindow)

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Window != edges[j].Window {
			return edges[i].Window < edges[j].Window
		}
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	return edges, nil
}

// windowedges - the retained upper-triangle correlations for one window's rows
func windowedges(window int, part []str.DocTopicRow, minassoc float64) []str.AssociationEdge {
	if len(part) < vv.MINDOCSPERWINDOW {
		return nil
	}
	ntopics := len(part[0].Theta)
	if ntopics < 2 {
		return nil
	}

	// column-major: one ranked series per topic
	ranked := make([][]float64, ntopics)
	for t := 0; t < ntopics; t++ {
		col := make([]float64, len(part))
		for i, r := range part {
			col[i] = r.Theta[t]
		}
		ranked[t] = averageranks(col)
	}

	var edges []str.AssociationEdge
	for a := 0; a < ntopics; a++ {
		for b := a + 1; b < ntopics; b++ {
			rho := stat.Correlation(ranked[a], ranked[b], nil)
			if math.IsNaN(rho) {
				// a zero-variance column correlates with nothing
				continue
			}
			if math.Abs(rho) < minassoc {
				continue
			}
			edges = append(edges, str.AssociationEdge{A: a, B: b, Correlation: rho, Window: window})
		}
	}
	return edges
}

// averageranks - rank transform with average ranks on ties; Pearson over these is Spearman's rho
func averageranks(vals []float64) []float64 {
	n := len(vals)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && vals[idx[j+1]] == vals[idx[i]] {
			j++
		}
		// positions i..j hold equal values; everybody gets the mean rank
		avg := (float64(i) + float64(j)) / 2.0
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg + 1
		}
		i = j + 1
	}
	return ranks
}
