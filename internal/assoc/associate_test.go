//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package assoc

import (
	"testing"

	"github.com/akratos/themestream/internal/str"
	"github.com/stretchr/testify/require"
)

// thetarows - one DocTopicRow per document; columns[t][i] is topic t's share in document i
func thetarows(window int, columns [][]float64) []str.DocTopicRow {
	ndocs := len(columns[0])
	rows := make([]str.DocTopicRow, ndocs)
	for i := 0; i < ndocs; i++ {
		theta := make([]float64, len(columns))
		for t := range columns {
			theta[t] = columns[t][i]
		}
		rows[i] = str.DocTopicRow{DocID: "doc", Window: window, Theta: theta}
	}
	return rows
}

func TestAssociateThreshold(t *testing.T) {
	// topics 0 and 1 move together perfectly; topic 2 tracks them weakly (rho = 0.3)
	rows := thetarows(1, [][]float64{
		{0.10, 0.20, 0.30, 0.40, 0.50},
		{0.15, 0.25, 0.35, 0.45, 0.55},
		{0.40, 0.20, 0.10, 0.30, 0.50},
	})

	edges, err := Associate(rows, 0.5)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, 0, edges[0].A)
	require.Equal(t, 1, edges[0].B)
	require.Equal(t, 1, edges[0].Window)
	require.InDelta(t, 1.0, edges[0].Correlation, 1e-9)

	// dropping the bar admits the two weak pairs as well
	edges, err = Associate(rows, 0.25)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	for _, e := range edges {
		require.Less(t, e.A, e.B)
	}
}

func TestAssociateNegativeCorrelationMagnitude(t *testing.T) {
	// anti-correlated topics: rho = -1; the magnitude clears the bar, the sign survives in the edge
	rows := thetarows(3, [][]float64{
		{0.1, 0.2, 0.3, 0.4, 0.5},
		{0.5, 0.4, 0.3, 0.2, 0.1},
	})

	edges, err := Associate(rows, 0.9)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.InDelta(t, -1.0, edges[0].Correlation, 1e-9)
}

func TestAssociateImpossibleThresholdIsEmptyNotFatal(t *testing.T) {
	rows := thetarows(1, [][]float64{
		{0.1, 0.2, 0.3, 0.4, 0.5},
		{0.1, 0.2, 0.3, 0.4, 0.5},
	})

	edges, err := Associate(rows, 1.1)
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestAssociateNegativeThresholdRefused(t *testing.T) {
	_, err := Associate(nil, -0.1)
	require.ErrorIs(t, err, str.ErrInvalidArgument)
}

func TestAssociateSkipsThinWindows(t *testing.T) {
	// two documents is below the minimum; the window yields nothing rather than junk correlations
	rows := thetarows(7, [][]float64{
		{0.1, 0.9},
		{0.9, 0.1},
	})

	edges, err := Associate(rows, 0.0)
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestAssociateZeroVarianceColumn(t *testing.T) {
	// a constant topic column has no ranks to correlate; its pairs are skipped silently
	rows := thetarows(1, [][]float64{
		{0.2, 0.2, 0.2, 0.2, 0.2},
		{0.1, 0.2, 0.3, 0.4, 0.5},
	})

	edges, err := Associate(rows, 0.0)
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestAssociatePartitionsByWindow(t *testing.T) {
	a := thetarows(1, [][]float64{
		{0.1, 0.2, 0.3, 0.4, 0.5},
		{0.2, 0.3, 0.4, 0.5, 0.6},
	})
	b := thetarows(2, [][]float64{
		{0.5, 0.4, 0.3, 0.2, 0.1},
		{0.6, 0.5, 0.4, 0.3, 0.2},
	})

	edges, err := Associate(append(a, b...), 0.5)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	require.Equal(t, 1, edges[0].Window)
	require.Equal(t, 2, edges[1].Window)
}

func TestAssociateIdempotent(t *testing.T) {
	rows := thetarows(1, [][]float64{
		{0.10, 0.20, 0.30, 0.40, 0.50},
		{0.15, 0.25, 0.35, 0.45, 0.55},
		{0.40, 0.20, 0.10, 0.30, 0.50},
	})

	first, err := Associate(rows, 0.25)
	require.NoError(t, err)
	second, err := Associate(rows, 0.25)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
