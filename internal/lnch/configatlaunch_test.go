//    themestream
//    Copyright: themestream contributors 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"testing"

	"github.com/akratos/themestream/internal/vv"
	"github.com/stretchr/testify/require"
)

func TestApplyFlagsOverrides(t *testing.T) {
	Config = BuildDefaultConfig()

	applyflags([]string{"-em", "40", "-ma", "0.7", "-sk", "10", "-k", "5,10", "-db", "alt.db", "-q", "-bw"})

	require.Equal(t, 40, Config.EMIterations)
	require.Equal(t, 0.7, Config.MinAssoc)
	require.Equal(t, 10, Config.SelectK)
	require.Equal(t, []int{5, 10}, Config.TopicCounts)
	require.Equal(t, "alt.db", Config.SQLiteFile)
	require.True(t, Config.QuietStart)
	require.True(t, Config.BlackAndWhite)
}

func TestApplyFlagsPostgresLogin(t *testing.T) {
	Config = BuildDefaultConfig()

	applyflags([]string{"-pg", `{"Pass": "secret", "Host": "10.0.0.5", "Port": 5433, "DBName": "tsDB", "User": "ts"}`})

	require.True(t, Config.UsePostgres)
	require.Equal(t, "10.0.0.5", Config.PGLogin.Host)
	require.Equal(t, 5433, Config.PGLogin.Port)
	require.Equal(t, "secret", Config.PGLogin.Pass)
}

func TestApplyFlagsTrailingValueFlag(t *testing.T) {
	// a value-taking flag with nothing after it is skipped, not a crash
	Config = BuildDefaultConfig()

	applyflags([]string{"-em"})
	require.Equal(t, vv.DEFAULTEMITERATIONS, Config.EMIterations)

	applyflags([]string{"-q", "-ma"})
	require.Equal(t, vv.DEFAULTMINASSOC, Config.MinAssoc)
	require.True(t, Config.QuietStart)
}

func TestParseTopicCounts(t *testing.T) {
	kk, err := parsetopiccounts("5, 10,15")
	require.NoError(t, err)
	require.Equal(t, []int{5, 10, 15}, kk)

	_, err = parsetopiccounts("5,x")
	require.Error(t, err)
}

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	require.Equal(t, vv.DEFAULTTOPICCOUNTS, c.TopicCounts)
	require.Contains(t, c.TopicCounts, c.SelectK)
	require.False(t, c.UsePostgres)
}
