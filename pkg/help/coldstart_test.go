package help

import (
	"testing"

	"github.com/dtnitsch/url-keywords/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestColdstartYAMLParses(t *testing.T) {
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(ColdstartYAML), &doc))
	assert.Contains(t, doc, "commands")
	assert.Contains(t, doc, "config_file")
}

func TestColdstartConfigExampleIsValid(t *testing.T) {
	var doc struct {
		ConfigFile string `yaml:"config_file"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(ColdstartYAML), &doc))

	cfg := models.DefaultConfig()
	require.NoError(t, yaml.Unmarshal([]byte(doc.ConfigFile), cfg))
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, models.TextModeVisible, cfg.Fetch.Mode)
}
