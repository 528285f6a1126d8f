package entity

// Stone catálogo de piedras.
type Stone struct {
	ID        int64
	StoneName string
	StoneType string
}

// LookupEntry fila genérica de catálogos (etapas, cantos, acabados).
type LookupEntry struct {
	ID   int64
	Name string
}

// HSNCode código arancelario usado en las facturas de compra.
type HSNCode struct {
	ID          int64
	Code        string
	Description string
}

// Etapas con significado para la analítica de inventario.
const (
	StageRawMaterial       int64 = 1
	StagePackagingComplete int64 = 6
)
