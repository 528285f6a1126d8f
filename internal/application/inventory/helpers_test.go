package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/infrastructure/memstore"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

type fixture struct {
	store *memstore.Store
	stone int64
}

func newFixture() *fixture {
	s := memstore.New()
	s.AddStage(1, "Raw Material")
	s.AddStage(6, "Packaging Complete")
	return &fixture{store: s, stone: s.AddStone("Kota Blue", "Limestone")}
}

func (f *fixture) attrs(length, width int64) dto.ItemAttributesRequest {
	return dto.ItemAttributesRequest{
		StoneID:  f.stone,
		LengthMM: decimal.NewFromInt(length),
		WidthMM:  decimal.NewFromInt(width),
	}
}
