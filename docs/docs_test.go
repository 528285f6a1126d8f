package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/stoneworks/inventory-api/docs"
)

func TestSwaggerRegistered(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "Stone Inventory API", doc.Info["title"])
	assert.Contains(t, doc.Paths["/api/inventory/manual-adjust"], "post")
	assert.Contains(t, doc.Paths["/api/procurements/items/{itemId}"], "delete")
	assert.Contains(t, doc.Paths, "/api/vendors/{id}/procurement-items/pdf")
}
