package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/pkg/logger"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m), l)
		out = append(out, m)
	}
	return out
}

func TestNew_TagsServiceAndComponent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Service: "stone-inventory", Output: &buf})

	log.Info().Msg("iniciando")
	log.Component("legacy").Warn().Int64("rows", 3).Msg("tabla copiada")

	got := lines(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "stone-inventory", got[0]["service"])
	assert.NotContains(t, got[0], "component")
	assert.Equal(t, "legacy", got[1]["component"])
	assert.Equal(t, "stone-inventory", got[1]["service"])
	assert.Equal(t, "warn", got[1]["level"])
}

func TestNew_LevelFiltersEvents(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "warn", Output: &buf})

	log.Debug().Msg("oculto")
	log.Info().Msg("oculto")
	log.Error().Msg("visible")

	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "visible", got[0]["message"])
	assert.NotContains(t, got[0], "service")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "verbose", Output: &buf})

	log.Debug().Msg("oculto")
	log.Info().Msg("visible")

	assert.Len(t, lines(t, &buf), 1)
}
