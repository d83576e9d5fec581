package models

// Workshop is a physical workshop room that owns toolboxes and inventory.
type Workshop struct {
	Codigo         string  `db:"tal_codigo" json:"tal_codigo"`
	Nombre         string  `db:"tal_nombre" json:"tal_nombre"`
	Descripcion    *string `db:"tal_descripcion" json:"tal_descripcion"`
	Ubicacion      *string `db:"tal_ubicacion" json:"tal_ubicacion"`
	ResponsableRut *string `db:"doc_rut" json:"doc_rut"`
}

// WorkshopDetail adds the responsible teacher's name.
type WorkshopDetail struct {
	Workshop
	ResponsableNombre *string `db:"doc_nombre" json:"doc_nombre"`
}

// CreateWorkshopRequest registers a workshop room.
type CreateWorkshopRequest struct {
	Codigo         string `json:"tal_codigo" validate:"required"`
	Nombre         string `json:"tal_nombre" validate:"required"`
	Descripcion    string `json:"tal_descripcion"`
	Ubicacion      string `json:"tal_ubicacion"`
	ResponsableRut string `json:"doc_rut"`
}

// UpdateWorkshopRequest edits a workshop's descriptive fields.
type UpdateWorkshopRequest struct {
	Nombre         string `json:"tal_nombre" validate:"required"`
	Descripcion    string `json:"tal_descripcion"`
	Ubicacion      string `json:"tal_ubicacion"`
	ResponsableRut string `json:"doc_rut"`
}

// WorkshopStats aggregates box and loan counts per workshop.
type WorkshopStats struct {
	Codigo             string  `db:"tal_codigo" json:"tal_codigo"`
	Nombre             string  `db:"tal_nombre" json:"tal_nombre"`
	Ubicacion          *string `db:"tal_ubicacion" json:"tal_ubicacion"`
	TotalCajas         int     `db:"total_cajas" json:"total_cajas"`
	CajasDisponibles   int     `db:"cajas_disponibles" json:"cajas_disponibles"`
	CajasPrestadas     int     `db:"cajas_prestadas" json:"cajas_prestadas"`
	TotalItems         int     `db:"total_items" json:"total_items"`
	PrestamosActivos   int     `db:"prestamos_activos" json:"prestamos_activos"`
	ItemsExtraviados   int     `db:"items_extraviados" json:"items_extraviados"`
	ItemsMantenimiento int     `db:"items_mantenimiento" json:"items_mantenimiento"`
}
