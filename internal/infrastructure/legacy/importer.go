package legacy

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/text/encoding/charmap"

	"github.com/stoneworks/inventory-api/pkg/logger"
)

// Options ajustes de la importación.
type Options struct {
	Latin1 bool // el origen guarda texto en ISO-8859-1
	DryRun bool // lee y convierte todo pero hace rollback al final
}

// Result filas copiadas por tabla, en orden de importación.
type Result struct {
	Tables []TableCount
}

// TableCount filas copiadas de una tabla.
type TableCount struct {
	Table string
	Rows  int64
}

// OpenMySQL abre la base de origen y verifica la conexión.
func OpenMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

// Importer copia las tablas del inventario de MySQL a PostgreSQL en una sola transacción.
type Importer struct {
	src  *sql.DB
	dst  *pgxpool.Pool
	log  *logger.Logger
	opts Options
}

// NewImporter construye el importador.
func NewImporter(src *sql.DB, dst *pgxpool.Pool, log *logger.Logger, opts Options) *Importer {
	return &Importer{src: src, dst: dst, log: log.Component("legacy"), opts: opts}
}

// Run copia todas las tablas y reajusta las secuencias. Si algo falla no queda nada escrito.
func (im *Importer) Run(ctx context.Context) (*Result, error) {
	tx, err := im.dst.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	cv := converter{}
	if im.opts.Latin1 {
		cv.dec = charmap.ISO8859_1.NewDecoder()
	}

	res := &Result{}
	for _, t := range tables {
		rows, err := im.read(ctx, t, cv)
		if err != nil {
			return nil, err
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{t.name}, t.names(), pgx.CopyFromRows(rows))
		if err != nil {
			return nil, fmt.Errorf("copy %s: %w", t.name, err)
		}
		if _, err := tx.Exec(ctx, resetSequenceSQL(t.name)); err != nil {
			return nil, fmt.Errorf("reset sequence %s: %w", t.name, err)
		}
		im.log.Info().Str("table", t.name).Int64("rows", n).Msg("tabla importada")
		res.Tables = append(res.Tables, TableCount{Table: t.name, Rows: n})
	}

	if im.opts.DryRun {
		im.log.Warn().Msg("dry run: se descarta la transacción")
		return res, nil
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

// read trae la tabla completa de MySQL ya convertida a los tipos de destino.
func (im *Importer) read(ctx context.Context, t table, cv converter) ([][]any, error) {
	query := fmt.Sprintf("SELECT %s FROM `%s` ORDER BY id", strings.Join(t.selectColumns(), ", "), t.name)
	rows, err := im.src.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.name, err)
	}
	defer rows.Close()

	var out [][]any
	for rows.Next() {
		raw := make([]any, len(t.selectColumns()))
		ptrs := make([]any, len(raw))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		row, err := convertRow(t, raw, cv)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", t.name, err)
	}
	return out, nil
}

// convertRow arma la fila de destino a partir de los valores leídos (sin columnas derivadas).
// La primera columna siempre es id.
func convertRow(t table, raw []any, cv converter) ([]any, error) {
	row := make([]any, 0, len(t.columns))
	var id int64
	j := 0
	for _, c := range t.columns {
		if c.kind == kindOperationID {
			row = append(row, OperationIDFor(id))
			continue
		}
		v, err := cv.convert(c.kind, raw[j])
		if err != nil {
			return nil, fmt.Errorf("%s.%s (id %d): %w", t.name, c.name, id, err)
		}
		if c.name == "id" {
			id = v.(int64)
		}
		row = append(row, v)
		j++
	}
	return row, nil
}

func resetSequenceSQL(tableName string) string {
	return fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`,
		tableName)
}
