package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/internal/application/dto"
)

func TestMasterDataLists(t *testing.T) {
	s := newTestServer(t)
	s.store.AddEdgesType("Hand Cut")
	s.store.AddFinishingType("Honed")
	s.store.AddHSNCode("6802", "Worked monumental or building stone")

	resp := s.do(t, http.MethodGet, "/api/master/stones", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stones := decode[[]dto.StoneResponse](t, resp)
	require.Len(t, stones, 1)
	assert.Equal(t, "Kota Blue", stones[0].StoneName)

	resp = s.do(t, http.MethodGet, "/api/master/stages", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.LookupResponse](t, resp), 2)

	for _, path := range []string{"/api/master/edges", "/api/master/finishes"} {
		resp = s.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Len(t, decode[[]dto.LookupResponse](t, resp), 1, path)
	}

	resp = s.do(t, http.MethodGet, "/api/master/hsn-codes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	codes := decode[[]dto.HSNCodeResponse](t, resp)
	require.Len(t, codes, 1)
	assert.Equal(t, "6802", codes[0].Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/nope", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
