package models

import "time"

// DashboardMetrics is the headline counter block of the dashboard.
type DashboardMetrics struct {
	TotalCajas       int `db:"total_cajas" json:"total_cajas"`
	CajasDisponibles int `db:"cajas_disponibles" json:"cajas_disponibles"`
	PrestamosActivos int `db:"prestamos_activos" json:"prestamos_activos"`
	ItemsExtraviados int `db:"items_extraviados" json:"items_extraviados"`
}

// RecentLoan is one row of the dashboard's latest-activity list.
type RecentLoan struct {
	PrestamoID   string    `db:"pre_id" json:"pre_id"`
	FechaInicio  time.Time `db:"pre_fecha_inicio" json:"pre_fecha_inicio"`
	Estado       string    `db:"pre_estado" json:"pre_estado"`
	CajaCodigo   string    `db:"caj_codigo" json:"caj_codigo"`
	GrupoNumero  int       `db:"gru_numero" json:"gru_numero"`
	CursoNombre  *string   `db:"cur_nombre" json:"cur_nombre"`
	TallerNombre *string   `db:"tal_nombre" json:"tal_nombre"`
}

// Alert severity levels.
const (
	AlertLevelWarning  = "WARNING"
	AlertLevelCritical = "CRITICAL"
)

// DashboardAlert flags a condition needing attention, such as boxes in
// maintenance or pending problem items.
type DashboardAlert struct {
	Tipo    string `json:"tipo"`
	Nivel   string `json:"nivel"`
	Mensaje string `json:"mensaje"`
	Total   int    `json:"total"`
}

// Dashboard bundles everything the landing page renders.
type Dashboard struct {
	Metricas  DashboardMetrics `json:"metricas"`
	Talleres  []WorkshopStats  `json:"talleres"`
	Recientes []RecentLoan     `json:"recientes"`
	Alertas   []DashboardAlert `json:"alertas"`
}
