package models

import "time"

// Movement types for the audit trail.
const (
	MovementLoan         = "PRESTAMO"
	MovementReturn       = "DEVOLUCION"
	MovementStatusChange = "CAMBIO_ESTADO"
	MovementRestock      = "REPOSICION"
)

// Movement is one entry of the audit trail. Most reference columns are
// optional because a movement may concern a box, a single unit, or both.
type Movement struct {
	ID            string    `db:"hm_id" json:"hm_id"`
	Fecha         time.Time `db:"hm_fecha" json:"hm_fecha"`
	Tipo          string    `db:"hm_tipo" json:"hm_tipo"`
	Observaciones *string   `db:"hm_observaciones" json:"hm_observaciones"`
	CajaCodigo    *string   `db:"caj_codigo" json:"caj_codigo"`
	InventarioID  *string   `db:"inv_id" json:"inv_id"`
	PrestamoID    *string   `db:"pre_id" json:"pre_id"`
	AlumnoRut     *string   `db:"alu_rut" json:"alu_rut"`
	DocenteRut    *string   `db:"doc_rut" json:"doc_rut"`
}

// MovementDetail joins the movement with human-readable context.
type MovementDetail struct {
	Movement
	ItemNombre    *string `db:"itm_nombre" json:"itm_nombre"`
	TallerNombre  *string `db:"tal_nombre" json:"tal_nombre"`
	DocenteNombre *string `db:"doc_nombre" json:"doc_nombre"`
	GrupoNumero   *int    `db:"gru_numero" json:"gru_numero"`
	CursoNombre   *string `db:"cur_nombre" json:"cur_nombre"`
}

// MovementFilter narrows history listings.
type MovementFilter struct {
	Tipo        string
	CajaCodigo  string
	FechaInicio string
	FechaFin    string
	Limit       int
}
