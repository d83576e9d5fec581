package models

// Toolbox statuses.
const (
	ToolboxStatusAvailable   = "DISPONIBLE"
	ToolboxStatusLoaned      = "PRESTADA"
	ToolboxStatusMaintenance = "MANTENIMIENTO"
	ToolboxStatusLost        = "EXTRAVIADA"
)

// Toolbox is a physical box of tools assigned to groups for the school year.
type Toolbox struct {
	Codigo        string  `db:"caj_codigo" json:"caj_codigo"`
	Numero        int     `db:"caj_numero" json:"caj_numero"`
	TallerCodigo  string  `db:"tal_codigo" json:"tal_codigo"`
	Estado        string  `db:"caj_estado" json:"caj_estado"`
	Candado       *string `db:"caj_candado" json:"caj_candado"`
	Observaciones *string `db:"caj_observaciones" json:"caj_observaciones"`
}

// ToolboxDetail joins the box with its workshop and the completeness
// percentage computed against the workshop's standard composition.
type ToolboxDetail struct {
	Toolbox
	TallerNombre *string `db:"tal_nombre" json:"tal_nombre"`
	Completitud  float64 `db:"completitud" json:"completitud"`
	TotalItems   int     `db:"total_items" json:"total_items"`
}

// ToolboxContentItem is one physical unit currently inside a box.
type ToolboxContentItem struct {
	ID            string  `db:"iec_id" json:"iec_id"`
	InventarioID  string  `db:"inv_id" json:"inv_id"`
	ItemCodigo    string  `db:"itm_codigo" json:"itm_codigo"`
	ItemNombre    string  `db:"itm_nombre" json:"itm_nombre"`
	ItemCategoria *string `db:"itm_categoria" json:"itm_categoria"`
	Estado        string  `db:"inv_estado" json:"inv_estado"`
	Condicion     *string `db:"inv_condicion" json:"inv_condicion"`
}

// CompositionEntry is one row of a workshop's standard toolbox composition.
type CompositionEntry struct {
	ID           string `db:"ce_id" json:"ce_id"`
	TallerCodigo string `db:"tal_codigo" json:"tal_codigo"`
	ItemCodigo   string `db:"itm_codigo" json:"itm_codigo"`
	ItemNombre   string `db:"itm_nombre" json:"itm_nombre"`
	Cantidad     int    `db:"ce_cantidad" json:"ce_cantidad"`
	Obligatorio  bool   `db:"ce_obligatorio" json:"ce_obligatorio"`
}

// CreateToolboxRequest registers a new toolbox in a workshop.
type CreateToolboxRequest struct {
	Codigo       string `json:"caj_codigo" validate:"required"`
	Numero       int    `json:"caj_numero" validate:"required,min=1"`
	TallerCodigo string `json:"tal_codigo" validate:"required"`
	Candado      string `json:"caj_candado"`
}

// UpdateToolboxStatusRequest moves a box between administrative states.
type UpdateToolboxStatusRequest struct {
	Estado        string `json:"estado" validate:"required,oneof=DISPONIBLE MANTENIMIENTO EXTRAVIADA"`
	Observaciones string `json:"observaciones"`
}

// ToolboxFilter narrows box listings.
type ToolboxFilter struct {
	TallerCodigo string
	Estado       string
}
