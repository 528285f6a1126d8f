package legacy

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestConvert_TextProtocolBytes(t *testing.T) {
	cv := converter{}

	n, err := cv.convert(kindInt, []byte("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	d, err := cv.convert(kindDecimal, []byte("12.345600"))
	require.NoError(t, err)
	assert.True(t, d.(decimal.Decimal).Equal(decimal.RequireFromString("12.3456")))

	b, err := cv.convert(kindBool, []byte("1"))
	require.NoError(t, err)
	assert.Equal(t, true, b)

	ts, err := cv.convert(kindTime, []byte("2024-02-29 10:15:00"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 10, 15, 0, 0, time.UTC), ts)
}

func TestConvert_Nulls(t *testing.T) {
	cv := converter{}

	v, err := cv.convert(kindNullInt, nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = cv.convert(kindDecimal, nil)
	require.NoError(t, err)
	assert.True(t, v.(decimal.Decimal).IsZero())

	_, err = cv.convert(kindInt, nil)
	assert.Error(t, err)
	_, err = cv.convert(kindTime, nil)
	assert.Error(t, err)
}

func TestConvert_Latin1(t *testing.T) {
	cv := converter{dec: charmap.ISO8859_1.NewDecoder()}

	v, err := cv.convert(kindText, []byte{'M', 0xE1, 'r', 'm', 'o', 'l'})
	require.NoError(t, err)
	assert.Equal(t, "Mármol", v)
}

func TestConvertRow_DerivesOperationID(t *testing.T) {
	var ledger table
	for _, tb := range tables {
		if tb.name == "inventory_transactions" {
			ledger = tb
		}
	}
	raw := []any{
		int64(7), int64(3), []byte("manual_add"), []byte("1.000000"), int64(5),
		[]byte("1.000000"), int64(5), nil, nil, []byte("System User"), time.Unix(0, 0).UTC(),
	}
	require.Len(t, raw, len(ledger.selectColumns()))

	row, err := convertRow(ledger, raw, converter{})

	require.NoError(t, err)
	require.Len(t, row, len(ledger.columns))
	assert.Equal(t, int64(7), row[0])
	assert.Equal(t, OperationIDFor(7), row[2])
	assert.NotEqual(t, uuid.Nil, row[2])
	assert.Equal(t, "manual_add", row[3])
	assert.Nil(t, row[8])
}

func TestOperationIDFor_Deterministic(t *testing.T) {
	assert.Equal(t, OperationIDFor(1), OperationIDFor(1))
	assert.NotEqual(t, OperationIDFor(1), OperationIDFor(2))
}

func TestResetSequenceSQL(t *testing.T) {
	q := resetSequenceSQL("stones")
	assert.Contains(t, q, "pg_get_serial_sequence('stones', 'id')")
	assert.Contains(t, q, "MAX(id) FROM stones")
}
