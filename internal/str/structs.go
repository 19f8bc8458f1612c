//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"gonum.org/v1/gonum/mat"
)

//
// THE DATA MODEL: documents, fitted models, association edges, network records
//

// Document - one tokenized document; immutable once handed to the trainer
type Document struct {
	ID       string
	TimeRank int // dense-ranked from the source date field
	Tokens   []string
}

// TopicModel - one fitted model for a given number of topics K
type TopicModel struct {
	K         int
	DocTopic  *mat.Dense // len(DocIDs) x K; every row sums to 1
	TopicWord *mat.Dense // K x len(Vocab); every row sums to 1
	Vocab     []string
	DocIDs    []string
	TimeRanks []int // parallel to DocIDs
}

// TopicScores - per-topic fit-quality signals for one model
type TopicScores struct {
	Exclusivity []float64
	Coherence   []float64
}

// DocTopicRow - long-form document-topic table row consumed by the association computer
type DocTopicRow struct {
	DocID  string
	Window int
	Theta  []float64 // probability mass per topic
}

// PrevalenceRow - per-window summed probability mass for one topic
type PrevalenceRow struct {
	Window int
	Topic  int
	Mass   float64
}

// AssociationEdge - an undirected topic pair that co-varies within one time window
// invariant: A < B and |Correlation| >= the threshold it was filtered with
type AssociationEdge struct {
	A           int
	B           int
	Correlation float64
	Window      int
}

// CentralityRecord - per (window, topic) node measurements
type CentralityRecord struct {
	Window      int
	Topic       int
	Community   int
	Degree      int
	Betweenness float64
	Closeness   float64
	PageRank    float64
	Prevalence  float64
}

// TopologyRecord - whole-graph measurements for one window
type TopologyRecord struct {
	Window       int
	Edges        int
	Nodes        int
	Diameter     float64
	Radius       float64
	MeanDistance float64
	Modularity   float64
	Transitivity float64
	Density      float64
}

// DocTopicProb - long-form extraction row: one (document, topic, probability)
type DocTopicProb struct {
	DocID string
	Topic int
	Prob  float64
}

// TopicWordProb - long-form extraction row: one (topic, word, probability)
type TopicWordProb struct {
	Topic int
	Word  string
	Prob  float64
}
