package models

// Inventory unit statuses.
const (
	UnitStatusAvailable   = "DISPONIBLE"
	UnitStatusAssigned    = "ASIGNADO"
	UnitStatusLost        = "EXTRAVIADO"
	UnitStatusMaintenance = "MANTENIMIENTO"
	UnitStatusRetired     = "DADO_DE_BAJA"
)

// Inventory unit conditions.
const (
	UnitConditionGood    = "BUENA"
	UnitConditionRegular = "REGULAR"
	UnitConditionBad     = "MALA"
)

// Item is a tool type in the catalog (e.g. "Martillo carpintero").
type Item struct {
	Codigo       string  `db:"itm_codigo" json:"itm_codigo"`
	Nombre       string  `db:"itm_nombre" json:"itm_nombre"`
	Descripcion  *string `db:"itm_descripcion" json:"itm_descripcion"`
	Categoria    *string `db:"itm_categoria" json:"itm_categoria"`
	TallerCodigo string  `db:"tal_codigo" json:"tal_codigo"`
}

// ItemSummary aggregates unit counts per catalog item.
type ItemSummary struct {
	Item
	TallerNombre        *string `db:"tal_nombre" json:"tal_nombre"`
	TotalUnidades       int     `db:"total_unidades" json:"total_unidades"`
	UnidadesDisponibles int     `db:"unidades_disponibles" json:"unidades_disponibles"`
	UnidadesAsignadas   int     `db:"unidades_asignadas" json:"unidades_asignadas"`
	UnidadesExtraviadas int     `db:"unidades_extraviadas" json:"unidades_extraviadas"`
}

// InventoryUnit is one physical unit of a catalog item.
type InventoryUnit struct {
	ID         string  `db:"inv_id" json:"inv_id"`
	ItemCodigo string  `db:"itm_codigo" json:"itm_codigo"`
	Estado     string  `db:"inv_estado" json:"inv_estado"`
	Condicion  *string `db:"inv_condicion" json:"inv_condicion"`
	FechaAlta  *string `db:"inv_fecha_alta" json:"inv_fecha_alta"`
}

// InventoryUnitDetail joins a unit with its item naming and current box.
type InventoryUnitDetail struct {
	InventoryUnit
	ItemNombre string  `db:"itm_nombre" json:"itm_nombre"`
	CajaCodigo *string `db:"caj_codigo" json:"caj_codigo"`
}

// CreateItemRequest registers a new catalog item, optionally with an
// initial batch of physical units.
type CreateItemRequest struct {
	Codigo       string `json:"itm_codigo" validate:"required"`
	Nombre       string `json:"itm_nombre" validate:"required"`
	Descripcion  string `json:"itm_descripcion"`
	Categoria    string `json:"itm_categoria"`
	TallerCodigo string `json:"tal_codigo" validate:"required"`
	Unidades     int    `json:"unidades" validate:"min=0,max=500"`
}

// UpdateUnitStatusRequest moves a unit between states with an audit note.
type UpdateUnitStatusRequest struct {
	Estado        string `json:"estado" validate:"required,oneof=DISPONIBLE EXTRAVIADO MANTENIMIENTO DADO_DE_BAJA"`
	Condicion     string `json:"condicion" validate:"omitempty,oneof=BUENA REGULAR MALA"`
	Observaciones string `json:"observaciones"`
}

// ReportMissingRequest flags a unit as missing outside a return review.
type ReportMissingRequest struct {
	InventarioID string `json:"inv_id" validate:"required"`
	Descripcion  string `json:"descripcion"`
	PrestamoID   string `json:"pre_id"`
}

// InventoryFilter narrows catalog listings.
type InventoryFilter struct {
	TallerCodigo string
	Categoria    string
	Search       string
}
