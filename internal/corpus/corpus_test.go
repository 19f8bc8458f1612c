//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDenseRank(t *testing.T) {
	raw := []RawDocument{
		{ID: "c", Date: "2019-06", Tokens: []string{"gamma"}},
		{ID: "a", Date: "2017-01", Tokens: []string{"alpha"}},
		{ID: "b", Date: "2017-01", Tokens: []string{"beta"}},
		{ID: "d", Date: "2018-11", Tokens: []string{"delta"}},
	}

	docs := DenseRank(raw)
	require.Len(t, docs, 4)

	// input order preserved; ranks dense over the sorted distinct dates
	require.Equal(t, "c", docs[0].ID)
	require.Equal(t, 3, docs[0].TimeRank)
	require.Equal(t, 1, docs[1].TimeRank)
	require.Equal(t, 1, docs[2].TimeRank)
	require.Equal(t, 2, docs[3].TimeRank)
}

func TestDenseRankDeduplicates(t *testing.T) {
	raw := []RawDocument{
		{ID: "a", Date: "2020-05", Tokens: []string{"late"}},
		{ID: "a", Date: "2020-01", Tokens: []string{"early"}},
		{ID: "a", Date: "2020-01", Tokens: []string{"tied"}},
		{ID: "b", Date: "2020-03", Tokens: []string{"other"}},
	}

	docs := DenseRank(raw)
	require.Len(t, docs, 2)

	// the earliest-dated row wins; among tied dates the first seen wins
	require.Equal(t, "a", docs[0].ID)
	require.Equal(t, []string{"early"}, docs[0].Tokens)
	require.Equal(t, 1, docs[0].TimeRank)
	require.Equal(t, 2, docs[1].TimeRank)
}

func TestCorpusViews(t *testing.T) {
	s := &SliceStore{Raw: []RawDocument{
		{ID: "a", Date: "2020-01", Tokens: []string{"one", "two"}},
		{ID: "b", Date: "2020-03", Tokens: []string{"three"}},
		{ID: "c", Date: "2020-01", Tokens: []string{"four"}},
	}}

	docs, err := s.LoadDocuments(context.Background())
	require.NoError(t, err)

	c := New(docs)
	require.Equal(t, 3, c.Len())
	require.Equal(t, []string{"one two", "three", "four"}, c.Texts())
	require.Equal(t, []int{1, 2}, c.Windows())
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()

	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.InsertDocument(ctx, "late", "2021-09", "omega psi"))
	require.NoError(t, s.InsertDocument(ctx, "early", "2021-02", "alpha beta"))
	require.NoError(t, s.InsertDocument(ctx, "middle", "2021-05", "mu nu"))

	docs, err := s.LoadDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// ranked by date inside the db, not by insertion order
	require.Equal(t, "early", docs[0].ID)
	require.Equal(t, 1, docs[0].TimeRank)
	require.Equal(t, []string{"alpha", "beta"}, docs[0].Tokens)
	require.Equal(t, "middle", docs[1].ID)
	require.Equal(t, 2, docs[1].TimeRank)
	require.Equal(t, "late", docs[2].ID)
	require.Equal(t, 3, docs[2].TimeRank)
}

func TestSQLiteInsertReplaces(t *testing.T) {
	ctx := context.Background()

	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.InsertDocument(ctx, "a", "2021-02", "first draft"))
	require.NoError(t, s.InsertDocument(ctx, "a", "2021-02", "second draft"))

	docs, err := s.LoadDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, []string{"second", "draft"}, docs[0].Tokens)
}
