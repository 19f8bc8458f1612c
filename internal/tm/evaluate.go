//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"math"
	"sort"

	"github.com/akratos/themestream/internal/corpus"
	"github.com/akratos/themestream/internal/str"
	"github.com/akratos/themestream/internal/vv"
)

//
// MODEL EVALUATION: exclusivity and semantic coherence, one score per topic
//

// Evaluate - score every fitted model in the set against the corpus it was fitted on
func Evaluate(cs *CandidateSet, c *corpus.Corpus) *CandidateSet {
	postings := buildpostings(c)

	for _, k := range cs.Ks() {
		m, err := cs.Select(k)
		if err != nil {
			// a K can only be in Ks() if its model is present; nothing to do otherwise
			continue
		}
		cs.setscores(k, str.TopicScores{
			Exclusivity: exclusivity(m),
			Coherence:   coherence(m, postings),
		})
	}
	return cs
}

// buildpostings - word -> set of document indices containing it; feeds the co-occurrence counts
func buildpostings(c *corpus.Corpus) map[string]map[int]struct{} {
	postings := make(map[string]map[int]struct{})
	for i := 0; i < len(c.Docs); i++ {
		for _, w := range c.Docs[i].Tokens {
			if _, ok := postings[w]; !ok {
				postings[w] = make(map[int]struct{})
			}
			postings[w][i] = struct{}{}
		}
	}
	return postings
}

// exclusivity - per topic: how much of its top words' total probability mass does this topic own?
// 1.0 means nobody else uses those words at all
func exclusivity(m *str.TopicModel) []float64 {
	scores := make([]float64, m.K)
	for topic := 0; topic < m.K; topic++ {
		top := topwords(m, topic, vv.EVALTOPWORDS)
		total := 0.0
		for _, w := range top {
			own := m.TopicWord.At(topic, w)
			all := 0.0
			for t := 0; t < m.K; t++ {
				all += m.TopicWord.At(t, w)
			}
			if all > 0 {
				total += own / all
			}
		}
		scores[topic] = total / float64(len(top))
	}
	return scores
}

// coherence - UMass semantic coherence: log co-document frequency of the topic's top word pairs
// always <= 0; closer to zero is better
func coherence(m *str.TopicModel, postings map[string]map[int]struct{}) []float64 {
	scores := make([]float64, m.K)
	for topic := 0; topic < m.K; topic++ {
		top := topwords(m, topic, vv.EVALTOPWORDS)
		score := 0.0
		for i := 1; i < len(top); i++ {
			for j := 0; j < i; j++ {
				wi := m.Vocab[top[i]]
				wj := m.Vocab[top[j]]
				dj := len(postings[wj])
				// the shared smoothing term keeps every summand at or below zero
				score += math.Log(float64(codoccount(postings[wi], postings[wj])+1) / float64(dj+1))
			}
		}
		scores[topic] = score
	}
	return scores
}

// topwords - the column indices of the n highest-probability words for one topic
func topwords(m *str.TopicModel, topic int, n int) []int {
	_, vocabsize := m.TopicWord.Dims()
	idx := make([]int, vocabsize)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return m.TopicWord.At(topic, idx[a]) > m.TopicWord.At(topic, idx[b])
	})
	if n > vocabsize {
		n = vocabsize
	}
	return idx[:n]
}

func codoccount(a map[int]struct{}, b map[int]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for doc := range a {
		if _, ok := b[doc]; ok {
			n++
		}
	}
	return n
}
