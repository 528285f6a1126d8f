package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	apphttp "github.com/stoneworks/inventory-api/internal/interfaces/http"
)

func TestAuth_RegisterLoginAndSign(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "meena", "name": "Meena Iyer", "password": "quarry-2026",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "meena", decode[dto.UserResponse](t, resp).Username)

	resp = s.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "meena", "password": "quarry-2026",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)

	resp = s.do(t, http.MethodPost, "/api/inventory/manual-add", map[string]any{
		"stone_id": s.stone, "length_mm": 600, "width_mm": 400, "quantity": "2", "unit": "Pieces",
	}, "Authorization", "Bearer "+login.Token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	added := decode[dto.ManualAddResponse](t, resp)

	resp = s.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/%d/transactions", added.InventoryItemID), nil)
	history := decode[dto.InventoryHistoryResponse](t, resp)
	require.Len(t, history.Transactions, 1)
	assert.Equal(t, "meena", history.Transactions[0].PerformedBy)
}

func TestAuth_SecondRegistrationNeedsToken(t *testing.T) {
	s := newTestServer(t)
	first := map[string]any{"username": "meena", "password": "quarry-2026"}
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/auth/register", first).StatusCode)

	resp := s.do(t, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "arjun", "password": "quarry-2026",
	})

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apphttp.CodeUnauthorized, decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuth_WrongPasswordIs401(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/api/auth/register", map[string]any{"username": "meena", "password": "quarry-2026"})

	resp := s.do(t, http.MethodPost, "/api/auth/login", map[string]any{"username": "meena", "password": "nope-nope"})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_ShortPasswordIs400(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/auth/register", map[string]any{"username": "meena", "password": "short"})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, resp).Message, "password")
}
