//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"fmt"

	"github.com/akratos/themestream/internal/str"
)

//
// DISTRIBUTION EXTRACTION: reshape a fitted model's matrices into long-form tables; pure reads
//

// Kind - which probability table to extract; a closed set
type Kind int

const (
	DocumentTopic Kind = iota
	TopicWord
)

func (k Kind) String() string {
	switch k {
	case DocumentTopic:
		return "document-topic"
	case TopicWord:
		return "topic-word"
	default:
		return "unknown"
	}
}

// LongTable - exactly one of the two slices is populated, per the requested Kind
type LongTable struct {
	DocTopic  []str.DocTopicProb
	TopicWord []str.TopicWordProb
}

// Extract - long-form rows for the requested distribution; unrecognized kinds are refused, never defaulted
func Extract(m *str.TopicModel, kind Kind) (*LongTable, error) {
	switch kind {
	case DocumentTopic:
		return &LongTable{DocTopic: ExtractDocTopic(m)}, nil
	case TopicWord:
		return &LongTable{TopicWord: ExtractTopicWord(m)}, nil
	default:
		return nil, fmt.Errorf("Extract() unrecognized distribution kind %d: legal values are '%s' and '%s': %w",
			kind, DocumentTopic, TopicWord, str.ErrInvalidArgument)
	}
}

// ExtractDocTopic - one row per (document, topic, probability)
func ExtractDocTopic(m *str.TopicModel) []str.DocTopicProb {
	rows := make([]str.DocTopicProb, 0, len(m.DocIDs)*m.K)
	for doc := 0; doc < len(m.DocIDs); doc++ {
		for topic := 0; topic < m.K; topic++ {
			rows = append(rows, str.DocTopicProb{
				DocID: m.DocIDs[doc],
				Topic: topic,
				Prob:  m.DocTopic.At(doc, topic),
			})
		}
	}
	return rows
}

// ExtractTopicWord - one row per (topic, word, probability)
func ExtractTopicWord(m *str.TopicModel) []str.TopicWordProb {
	rows := make([]str.TopicWordProb, 0, m.K*len(m.Vocab))
	for topic := 0; topic < m.K; topic++ {
		for w := 0; w < len(m.Vocab); w++ {
			rows = append(rows, str.TopicWordProb{
				Topic: topic,
				Word:  m.Vocab[w],
				Prob:  m.TopicWord.At(topic, w),
			})
		}
	}
	return rows
}

// DocTopicTable - the windowed document-topic table the association computer consumes
func DocTopicTable(m *str.TopicModel) []str.DocTopicRow {
	rows := make([]str.DocTopicRow, len(m.DocIDs))
	for doc := 0; doc < len(m.DocIDs); doc++ {
		theta := make([]float64, m.K)
		for topic := 0; topic < m.K; topic++ {
			theta[topic] = m.DocTopic.At(doc, topic)
		}
		rows[doc] = str.DocTopicRow{
			DocID:  m.DocIDs[doc],
			Window: m.TimeRanks[doc],
			Theta:  theta,
		}
	}
	return rows
}
