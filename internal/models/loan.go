package models

import "time"

// Loan statuses.
const (
	LoanStatusActive          = "ACTIVO"
	LoanStatusReturned        = "DEVUELTO"
	LoanStatusReturnedPartial = "DEVUELTO_PARCIAL"
)

// Problem item types and statuses.
const (
	ProblemTypeMissing = "FALTANTE"
	ProblemTypeDamaged = "DAÑADO"

	ProblemStatusPending  = "PENDIENTE"
	ProblemStatusResolved = "RESUELTO"
)

// Loan is an annual toolbox assignment to a student group.
type Loan struct {
	ID            string     `db:"pre_id" json:"pre_id"`
	CajaCodigo    string     `db:"caj_codigo" json:"caj_codigo"`
	GrupoID       string     `db:"gru_id" json:"gru_id"`
	DocenteRut    string     `db:"doc_rut" json:"doc_rut"`
	Anio          int        `db:"pre_anio" json:"pre_anio"`
	FechaInicio   time.Time  `db:"pre_fecha_inicio" json:"pre_fecha_inicio"`
	FechaFin      *time.Time `db:"pre_fecha_fin" json:"pre_fecha_fin"`
	Estado        string     `db:"pre_estado" json:"pre_estado"`
	Observaciones *string    `db:"pre_observaciones" json:"pre_observaciones"`
}

// LoanDetail joins a loan with box, group, course and workshop naming.
type LoanDetail struct {
	Loan
	CajaNumero    int     `db:"caj_numero" json:"caj_numero"`
	GrupoNumero   int     `db:"gru_numero" json:"gru_numero"`
	GrupoNombre   *string `db:"gru_nombre" json:"gru_nombre"`
	CursoCodigo   *string `db:"cur_codigo" json:"cur_codigo"`
	CursoNombre   *string `db:"cur_nombre" json:"cur_nombre"`
	TallerCodigo  *string `db:"tal_codigo" json:"tal_codigo"`
	TallerNombre  *string `db:"tal_nombre" json:"tal_nombre"`
	DocenteNombre *string `db:"doc_nombre" json:"doc_nombre"`
}

// AssignLoanRequest starts an annual loan of a box to a group.
type AssignLoanRequest struct {
	CajaCodigo    string `json:"caj_codigo" validate:"required"`
	GrupoID       string `json:"gru_id" validate:"required"`
	Anio          int    `json:"anio" validate:"required,min=2000"`
	Observaciones string `json:"observaciones"`
}

// ReviewEntry is the reviewer's verdict on one unit during a return.
// Absent units become FALTANTE problems; present units in bad shape
// become DAÑADO problems and go to maintenance.
type ReviewEntry struct {
	InventarioID  string `json:"inv_id" validate:"required"`
	Presente      bool   `json:"presente"`
	Condicion     string `json:"condicion" validate:"omitempty,oneof=BUENA REGULAR MALA"`
	Observaciones string `json:"observaciones"`
}

// ReturnLoanRequest closes a loan after the end-of-year review.
type ReturnLoanRequest struct {
	Revision      []ReviewEntry `json:"revision" validate:"required,min=1,dive"`
	Observaciones string        `json:"observaciones"`
}

// ReturnResult summarizes the outcome of a processed return.
type ReturnResult struct {
	PrestamoID     string `json:"pre_id"`
	Estado         string `json:"pre_estado"`
	ItemsRevisados int    `json:"items_revisados"`
	ItemsFaltantes int    `json:"items_faltantes"`
	ItemsDanados   int    `json:"items_danados"`
}

// ProblemItem records a unit reported missing or damaged.
type ProblemItem struct {
	ID           string     `db:"ip_id" json:"ip_id"`
	PrestamoID   *string    `db:"pre_id" json:"pre_id"`
	InventarioID string     `db:"inv_id" json:"inv_id"`
	Tipo         string     `db:"ip_tipo" json:"ip_tipo"`
	Descripcion  *string    `db:"ip_descripcion" json:"ip_descripcion"`
	Estado       string     `db:"ip_estado" json:"ip_estado"`
	FechaReporte time.Time  `db:"ip_fecha_reporte" json:"ip_fecha_reporte"`
	FechaCierre  *time.Time `db:"ip_fecha_cierre" json:"ip_fecha_cierre"`
}

// ProblemItemDetail joins the problem with item and loan context for reports.
type ProblemItemDetail struct {
	ProblemItem
	ItemCodigo   string  `db:"itm_codigo" json:"itm_codigo"`
	ItemNombre   string  `db:"itm_nombre" json:"itm_nombre"`
	CajaCodigo   *string `db:"caj_codigo" json:"caj_codigo"`
	GrupoNumero  *int    `db:"gru_numero" json:"gru_numero"`
	CursoNombre  *string `db:"cur_nombre" json:"cur_nombre"`
	TallerNombre *string `db:"tal_nombre" json:"tal_nombre"`
}

// LoanFilter narrows loan listings.
type LoanFilter struct {
	Anio         int
	Estado       string
	TallerCodigo string
}
