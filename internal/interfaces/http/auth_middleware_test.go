package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/pkg/jwt"
)

func TestOptionalAuth_ValidTokenSignsMovements(t *testing.T) {
	s := newTestServer(t)
	token, err := jwt.Generate(testJWTSecret, "ravi.sharma", "stone-inventory-test", 5)
	require.NoError(t, err)

	resp := s.do(t, http.MethodPost, "/api/inventory/manual-add", map[string]any{
		"stone_id": s.stone, "length_mm": 600, "width_mm": 400, "quantity": "3", "unit": "Pieces",
	}, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	added := decode[dto.ManualAddResponse](t, resp)

	resp = s.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/%d/transactions", added.InventoryItemID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decode[dto.InventoryHistoryResponse](t, resp)
	require.Len(t, history.Transactions, 1)
	assert.Equal(t, "ravi.sharma", history.Transactions[0].PerformedBy)
}

func TestOptionalAuth_AnonymousPasses(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/inventory", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOptionalAuth_RejectsBadTokens(t *testing.T) {
	s := newTestServer(t)
	foreign, err := jwt.Generate("another-secret", "ravi.sharma", "other", 5)
	require.NoError(t, err)

	cases := map[string]string{
		"malformed header": "Token abc",
		"empty bearer":     "Bearer ",
		"garbage":          "Bearer not.a.jwt",
		"wrong secret":     "Bearer " + foreign,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			resp := s.do(t, http.MethodGet, "/api/inventory", nil, "Authorization", header)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestOptionalAuth_HealthIsPublic(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/health", nil, "Authorization", "Bearer not.a.jwt")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}
