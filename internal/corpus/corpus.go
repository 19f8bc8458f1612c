//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"context"
	"sort"
	"strings"

	"github.com/akratos/themestream/internal/gen"
	"github.com/akratos/themestream/internal/str"
)

//
// THE CORPUS INTERFACE: tokenized documents with per-document time-rank metadata
//

// Store - anything that can hand the pipeline a ranked document collection
type Store interface {
	LoadDocuments(ctx context.Context) ([]str.Document, error)
}

// Corpus - the prepared document collection every downstream stage consumes
type Corpus struct {
	Docs []str.Document
}

func New(docs []str.Document) *Corpus {
	return &Corpus{Docs: docs}
}

func (c *Corpus) Len() int {
	return len(c.Docs)
}

// Texts - space-joined token sequences, one per document, in document order; this is what the vectoriser eats
func (c *Corpus) Texts() []string {
	tt := make([]string, len(c.Docs))
	for i := 0; i < len(c.Docs); i++ {
		tt[i] = strings.Join(c.Docs[i].Tokens, " ")
	}
	return tt
}

// Windows - the sorted distinct time ranks present in the corpus
func (c *Corpus) Windows() []int {
	rr := make([]int, len(c.Docs))
	for i := 0; i < len(c.Docs); i++ {
		rr[i] = c.Docs[i].TimeRank
	}
	return gen.IntMapKeysIntoSortedSlice(gen.ToSet(rr))
}

// RawDocument - a document as the outside world supplies it: dated, not yet ranked
type RawDocument struct {
	ID     string
	Date   string // sortable date string, e.g. "2017-03" or "2017-03-22"
	Tokens []string
}

// SliceStore - in-memory Store for callers that already hold tokenized documents; also the test fixture
type SliceStore struct {
	Raw []RawDocument
}

func (s *SliceStore) LoadDocuments(ctx context.Context) ([]str.Document, error) {
	return DenseRank(s.Raw), nil
}

// DenseRank - turn dated documents into time-ranked ones: distinct dates sorted ascending get ranks 1, 2, 3, ...
// duplicate document ids collapse to one canonical row per id: the earliest-dated row wins, ties broken by input order
func DenseRank(raw []RawDocument) []str.Document {
	// grouped reduce: one representative row per id
	canonical := make(map[string]RawDocument)
	var order []string
	for _, r := range raw {
		held, ok := canonical[r.ID]
		if !ok {
			canonical[r.ID] = r
			order = append(order, r.ID)
			continue
		}
		if r.Date < held.Date {
			canonical[r.ID] = r
		}
	}

	dates := make(map[string]struct{})
	for _, id := range order {
		dates[canonical[id].Date] = struct{}{}
	}
	dd := make([]string, 0, len(dates))
	for d := range dates {
		dd = append(dd, d)
	}
	sort.Strings(dd)

	rank := make(map[string]int, len(dd))
	for i, d := range dd {
		rank[d] = i + 1
	}

	docs := make([]str.Document, 0, len(order))
	for _, id := range order {
		r := canonical[id]
		docs = append(docs, str.Document{
			ID:       r.ID,
			TimeRank: rank[r.Date],
			Tokens:   r.Tokens,
		})
	}
	return docs
}
