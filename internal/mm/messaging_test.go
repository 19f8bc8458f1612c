//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func colormaker() *MessageMaker {
	m := NewMessageMaker("Testing", "TT", "0.0.0")
	m.Win = false
	return m
}

func TestColorSwapsTags(t *testing.T) {
	m := colormaker()

	out := m.Color("C4ok:C0 done")
	require.Equal(t, GREEN+"ok:"+RESET+" done", out)
	require.NotContains(t, out, "C4")
	require.NotContains(t, out, "C0")
}

func TestStyledSwapsTags(t *testing.T) {
	m := colormaker()

	out := m.Styled("S1bold hereS0")
	require.True(t, strings.HasPrefix(out, "\033[1m"))
	require.True(t, strings.HasSuffix(out, RESET))
	require.NotContains(t, out, "S1")
}

func TestColStyleStripsInBlackAndWhite(t *testing.T) {
	m := colormaker()
	m.BW = true

	out := m.ColStyle("[C1TTC0] S1C5TestingS0C0 (C2v0.0.0C0)")
	require.Equal(t, "[TT] Testing (v0.0.0)", out)
}
