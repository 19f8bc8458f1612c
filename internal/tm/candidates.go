//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"fmt"
	"sync"

	"github.com/akratos/themestream/internal/str"
	"github.com/google/uuid"
)

//
// THE CANDIDATE SET: one fitted model per distinct K, plus scores and per-K failures
//

type CandidateSet struct {
	ID       string
	ks       []int // distinct, in request order
	models   map[int]*str.TopicModel
	scores   map[int]str.TopicScores
	failures map[int]error
	mtx      sync.RWMutex
}

func NewCandidateSet() *CandidateSet {
	return &CandidateSet{
		ID:       uuid.New().String(),
		models:   make(map[int]*str.TopicModel),
		scores:   make(map[int]str.TopicScores),
		failures: make(map[int]error),
	}
}

func (cs *CandidateSet) insert(m *str.TopicModel) {
	cs.mtx.Lock()
	defer cs.mtx.Unlock()
	if _, ok := cs.models[m.K]; !ok {
		cs.ks = append(cs.ks, m.K)
	}
	cs.models[m.K] = m
}

func (cs *CandidateSet) fail(k int, err error) {
	cs.mtx.Lock()
	defer cs.mtx.Unlock()
	cs.failures[k] = err
}

// Select - strict lookup of the model fitted with exactly K topics; never a nearest match
func (cs *CandidateSet) Select(k int) (*str.TopicModel, error) {
	cs.mtx.RLock()
	defer cs.mtx.RUnlock()
	m, ok := cs.models[k]
	if !ok {
		return nil, fmt.Errorf("CandidateSet.Select() has no model with K=%d: %w", k, str.ErrNotFound)
	}
	return m, nil
}

// Ks - the distinct topic counts that fitted successfully, in request order
func (cs *CandidateSet) Ks() []int {
	cs.mtx.RLock()
	defer cs.mtx.RUnlock()
	kk := make([]int, len(cs.ks))
	copy(kk, cs.ks)
	return kk
}

// Failures - per-K fit errors; an empty map means every requested fit succeeded
func (cs *CandidateSet) Failures() map[int]error {
	cs.mtx.RLock()
	defer cs.mtx.RUnlock()
	ff := make(map[int]error, len(cs.failures))
	for k, e := range cs.failures {
		ff[k] = e
	}
	return ff
}

// Scores - the (exclusivity, coherence) vectors for one model; second return is false before Evaluate() has run
func (cs *CandidateSet) Scores(k int) (str.TopicScores, bool) {
	cs.mtx.RLock()
	defer cs.mtx.RUnlock()
	s, ok := cs.scores[k]
	return s, ok
}

func (cs *CandidateSet) setscores(k int, s str.TopicScores) {
	cs.mtx.Lock()
	defer cs.mtx.Unlock()
	cs.scores[k] = s
}
