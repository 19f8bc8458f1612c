//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/akratos/themestream/internal/corpus"
	"github.com/akratos/themestream/internal/gen"
	"github.com/akratos/themestream/internal/lnch"
	"github.com/akratos/themestream/internal/mm"
	"github.com/akratos/themestream/internal/str"
	"github.com/akratos/themestream/internal/vv"
	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// see https://go.dev/blog/pipelines : Parallel digestion & Fan-out, fan-in

// InitStrategy - how the variational fit is seeded; a closed set, always switched exhaustively
type InitStrategy int

const (
	InitSpectral InitStrategy = iota
	InitRandom
)

func (i InitStrategy) String() string {
	switch i {
	case InitSpectral:
		return "spectral"
	case InitRandom:
		return "random"
	default:
		return "unknown"
	}
}

// FitSettings - knobs for one training batch; the zero value gets sane defaults
type FitSettings struct {
	EMIterations int
	Init         InitStrategy
	Workers      int
}

type fitresult struct {
	k     int
	model *str.TopicModel
	err   error
}

// Train - fit one topic model per distinct entry in seqK; failed fits are recorded, not fatal
func Train(ctx context.Context, c *corpus.Corpus, seqK []int, fs FitSettings) *CandidateSet {
	const (
		MSG1 = "Train() [%s] fitting %d models over %d workers"
		MSG2 = "Train() [%s] fit failed for K=%d: %v"
		MSG3 = "%d models fitted"
	)

	if fs.EMIterations < 1 {
		fs.EMIterations = vv.DEFAULTEMITERATIONS
	}
	if fs.Workers < 1 {
		fs.Workers = 1
	}

	cs := NewCandidateSet()
	ks := gen.Unique(seqK)

	lnch.Msg.Emit(fmt.Sprintf(MSG1, cs.ID, len(ks), fs.Workers), mm.MSGFYI)
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// [a] load the topic counts into a channel
	kfeed := kfeeder(ctx, ks, fs.Workers)

	// [b] fan out; every worker owns its vectoriser and its lda: no shared mutable state between fits
	fitchannels := make([]<-chan fitresult, fs.Workers)
	for i := 0; i < fs.Workers; i++ {
		fitchannels[i] = fitter(ctx, c, fs, kfeed)
	}

	// [c] fan in and collect; a failed fit only marks its own K
	for fr := range fitaggregator(ctx, fitchannels...) {
		if fr.err != nil {
			cs.fail(fr.k, fr.err)
			lnch.Msg.Emit(fmt.Sprintf(MSG2, cs.ID, fr.k, fr.err), mm.MSGWARN)
		} else {
			cs.insert(fr.model)
		}
	}

	lnch.Msg.Timer("T", fmt.Sprintf(MSG3, len(cs.Ks())), start, start)

	return cs
}

// kfeeder - emit the requested topic counts to a channel; they will be consumed by the fitters
func kfeeder(ctx context.Context, ks []int, buffer int) <-chan int {
	emitks := make(chan int, buffer)
	go func() {
		defer close(emitks)
		for i := 0; i < len(ks); i++ {
			select {
			case <-ctx.Done():
				return
			case emitks <- ks[i]:
			}
		}
	}()
	return emitks
}

// fitter - grab a K; fit a model; emit the result to a channel
func fitter(ctx context.Context, c *corpus.Corpus, fs FitSettings, kfeed <-chan int) <-chan fitresult {
	results := make(chan fitresult)

	consume := func() {
		defer close(results)
		for k := range kfeed {
			select {
			case <-ctx.Done():
				return
			default:
				m, err := fitone(c, k, fs)
				results <- fitresult{k: k, model: m, err: err}
			}
		}
	}

	go consume()

	return results
}

// fitaggregator - gather the per-worker result channels into one place
func fitaggregator(ctx context.Context, fitchannels ...<-chan fitresult) <-chan fitresult {
	var wg sync.WaitGroup
	collected := make(chan fitresult)

	broadcast := func(frc <-chan fitresult) {
		defer wg.Done()
		for fr := range frc {
			select {
			case collected <- fr:
			case <-ctx.Done():
				return
			}
		}
	}

	wg.Add(len(fitchannels))
	for _, fc := range fitchannels {
		go broadcast(fc)
	}

	go func() {
		wg.Wait()
		close(collected)
	}()

	return collected
}

// fitone - build one topic model for one K; everything here is local to this call
func fitone(c *corpus.Corpus, k int, fs FitSettings) (*str.TopicModel, error) {
	if k < 1 {
		return nil, fmt.Errorf("fitone() needs a positive topic count, got K=%d: %w", k, str.ErrInvalidArgument)
	}
	if k >= c.Len() {
		return nil, fmt.Errorf("fitone() K=%d is degenerate for a %d document corpus: %w", k, c.Len(), str.ErrFitFailure)
	}

	vectoriser := nlp.NewCountVectoriser()

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Iterations = fs.EMIterations
	lda.TransformationPasses = fs.EMIterations / 2
	// fits are parallel across K values; keep each individual fit single-threaded
	lda.Processes = 1

	switch fs.Init {
	case InitSpectral:
		// the variational fitter has no true spectral initializer; a K-keyed seed gives stable reruns instead
		lda.Rnd = rand.New(rand.NewSource(uint64(k)))
	case InitRandom:
		lda.Rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	default:
		return nil, fmt.Errorf("fitone() unknown initialization strategy %d: %w", fs.Init, str.ErrInvalidArgument)
	}

	pipeline := nlp.NewPipeline(vectoriser, lda)

	docsOverTopics, err := pipeline.FitTransform(c.Texts()...)
	if err != nil {
		return nil, fmt.Errorf("fitone() K=%d did not converge: %v: %w", k, err, str.ErrFitFailure)
	}

	// rows = K; columns = len(docs)
	tr, tc := docsOverTopics.Dims()
	if tr != k || tc != c.Len() {
		return nil, fmt.Errorf("fitone() K=%d produced a %dx%d document-topic matrix for a %d document corpus: %w",
			k, tr, tc, c.Len(), str.ErrFitFailure)
	}

	doctopic := mat.NewDense(c.Len(), k, nil)
	for doc := 0; doc < tc; doc++ {
		for topic := 0; topic < tr; topic++ {
			doctopic.Set(doc, topic, docsOverTopics.At(topic, doc))
		}
	}
	normalizerows(doctopic)

	components := lda.Components()
	wr, wc := components.Dims()
	topicword := mat.NewDense(wr, wc, nil)
	topicword.Copy(components)
	normalizerows(topicword)

	vocab := make([]string, len(vectoriser.Vocabulary))
	for w, idx := range vectoriser.Vocabulary {
		vocab[idx] = w
	}

	ids := make([]string, c.Len())
	ranks := make([]int, c.Len())
	for i := 0; i < c.Len(); i++ {
		ids[i] = c.Docs[i].ID
		ranks[i] = c.Docs[i].TimeRank
	}

	return &str.TopicModel{
		K:         k,
		DocTopic:  doctopic,
		TopicWord: topicword,
		Vocab:     vocab,
		DocIDs:    ids,
		TimeRanks: ranks,
	}, nil
}

// normalizerows - force every row of m to sum to 1; all-zero rows become uniform
func normalizerows(m *mat.Dense) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		total := 0.0
		for j := 0; j < c; j++ {
			total += m.At(i, j)
		}
		if total == 0 {
			for j := 0; j < c; j++ {
				m.Set(i, j, 1.0/float64(c))
			}
			continue
		}
		for j := 0; j < c; j++ {
			m.Set(i, j, m.At(i, j)/total)
		}
	}
}
