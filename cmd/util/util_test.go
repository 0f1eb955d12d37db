package util

import (
	"strings"
	"testing"

	"github.com/ValentinKolb/bsamples/lib/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapString(t *testing.T) {
	text := "Directory the fixture files are written to or compared with, relative to the working directory"
	for _, line := range strings.Split(WrapString(text), "\n") {
		assert.LessOrEqual(t, len(line), Wrap)
	}
	assert.Equal(t, "short text", WrapString("short   text"))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"simple", "maps"}, SplitList(" simple, ,maps,"))
}

func TestGetGeneratorConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("format", "yml")
	viper.Set("out-dir", "")
	viper.Set("only", "options,sets")
	viper.Set("strict", true)
	viper.Set("log-level", "debug")

	config, err := GetGeneratorConfig()
	require.NoError(t, err)
	assert.Equal(t, common.FormatYAML, config.Format)
	assert.Equal(t, common.DefaultOutDir, config.OutDir)
	assert.Equal(t, []string{"options", "sets"}, config.Only)
	assert.True(t, config.Strict)
	assert.Equal(t, "debug", config.LogLevel)

	viper.Set("format", "xml")
	_, err = GetGeneratorConfig()
	assert.Error(t, err)
}
