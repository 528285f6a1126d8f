package dto

// StoneResponse fila del catálogo de piedras.
type StoneResponse struct {
	ID        int64  `json:"id"`
	StoneName string `json:"stone_name"`
	StoneType string `json:"stone_type"`
}

// LookupResponse fila de etapas, cantos o acabados.
type LookupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HSNCodeResponse fila del catálogo HSN.
type HSNCodeResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}
