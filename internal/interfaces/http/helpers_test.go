package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/internal/application/auth"
	"github.com/stoneworks/inventory-api/internal/application/inventory"
	"github.com/stoneworks/inventory-api/internal/application/procurement"
	"github.com/stoneworks/inventory-api/internal/application/usecase"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/infrastructure/excel"
	"github.com/stoneworks/inventory-api/internal/infrastructure/memstore"
	"github.com/stoneworks/inventory-api/internal/infrastructure/pdf"
	apphttp "github.com/stoneworks/inventory-api/internal/interfaces/http"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

type testServer struct {
	app    *fiber.App
	store  *memstore.Store
	stone  int64
	vendor int64
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := memstore.New()
	s.AddStage(entity.StageRawMaterial, "Raw Material")
	s.AddStage(entity.StagePackagingComplete, "Packaging Complete")
	srv := &testServer{
		store:  s,
		stone:  s.AddStone("Kota Blue", "Limestone"),
		vendor: s.AddVendor("Rajasthan Stone Co", "Kota"),
	}

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	r := s.Repos()
	srv.app = apphttp.NewApp(apphttp.ServerConfig{AppName: "stone-inventory-test", Production: true}, log)
	apphttp.Router(srv.app, apphttp.RouterDeps{
		Adjust:         inventory.NewAdjustUseCase(s, log, inventory.DefaultManualPerformer),
		InventoryQuery: inventory.NewQueryUseCase(s, r.Items, r.Transactions, excel.NewHistoryGenerator(), log),
		Procurement: procurement.NewProcurementUseCase(s, r.Procurements, r.ProcurementItems,
			pdf.NewMarotoPDFGenerator(), log, procurement.DefaultPerformer),
		MasterData: usecase.NewMasterDataUseCase(s.MasterData()),
		Auth: auth.NewAuthUseCase(s.Users(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: 5, Issuer: "stone-inventory-test",
		}, log),
		JWTSecret: testJWTSecret,
		AppName:   "stone-inventory-test",
	})
	return srv
}

// do lanza la petición; body se serializa a JSON si no es nil.
func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
