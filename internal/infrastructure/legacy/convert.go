package legacy

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
)

// operationNamespace espacio UUID v5 para los operation_id de filas importadas.
var operationNamespace = uuid.MustParse("6f0f6d7c-3b7a-4d0e-9a51-2c4f3f1e8b10")

// OperationIDFor devuelve el operation_id determinístico de una fila del ledger importada.
// Reimportar la misma fila produce el mismo valor.
func OperationIDFor(transactionID int64) uuid.UUID {
	return uuid.NewSHA1(operationNamespace, []byte("inventory_transactions:"+strconv.FormatInt(transactionID, 10)))
}

// converter transforma valores leídos con database/sql al tipo que espera pgx.
// dec, si no es nil, decodifica el texto (latin1 en bases viejas).
type converter struct {
	dec *encoding.Decoder
}

func (cv converter) convert(k kind, v any) (any, error) {
	if v == nil {
		switch k {
		case kindNullInt, kindNullText:
			return nil, nil
		case kindText:
			return "", nil
		case kindBool:
			return false, nil
		case kindDecimal:
			return decimal.Zero, nil
		}
		return nil, fmt.Errorf("valor nulo en columna obligatoria")
	}
	switch k {
	case kindInt, kindNullInt:
		return toInt(v)
	case kindText, kindNullText:
		return cv.toText(v)
	case kindBool:
		n, err := toInt(v)
		if err != nil {
			return nil, err
		}
		return n != 0, nil
	case kindDecimal:
		return toDecimal(v)
	case kindTime:
		return toTime(v)
	}
	return nil, fmt.Errorf("tipo de columna desconocido %d", k)
}

func toInt(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int32:
		return int64(x), nil
	case uint64:
		return int64(x), nil
	case []byte:
		return strconv.ParseInt(string(x), 10, 64)
	case string:
		return strconv.ParseInt(x, 10, 64)
	}
	return 0, fmt.Errorf("entero inesperado %T", v)
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case []byte:
		return decimal.NewFromString(string(x))
	case string:
		return decimal.NewFromString(x)
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	}
	return decimal.Zero, fmt.Errorf("decimal inesperado %T", v)
}

func (cv converter) toText(v any) (string, error) {
	var s string
	switch x := v.(type) {
	case []byte:
		s = string(x)
	case string:
		s = x
	default:
		return "", fmt.Errorf("texto inesperado %T", v)
	}
	if cv.dec == nil {
		return s, nil
	}
	out, err := cv.dec.String(s)
	if err != nil {
		return "", err
	}
	return out, nil
}

// layouts formatos de fecha que devuelve MySQL cuando parseTime no está activo.
var layouts = []string{"2006-01-02 15:04:05.999999", "2006-01-02 15:04:05", "2006-01-02"}

func toTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case []byte:
		return parseTime(string(x))
	case string:
		return parseTime(x)
	}
	return time.Time{}, fmt.Errorf("fecha inesperada %T", v)
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range layouts {
		if t, err := time.ParseInLocation(l, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q", s)
}
