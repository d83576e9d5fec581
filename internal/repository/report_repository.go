package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/colegio-nocedal/panol-api/internal/models"
)

// ReportRepository runs the filtered queries behind the reporting pages.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs a ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Loans returns loan rows for the loan report.
func (r *ReportRepository) Loans(ctx context.Context, filter models.ReportFilter) ([]models.LoanDetail, error) {
	query := strings.Builder{}
	query.WriteString("SELECT" + loanDetailColumns + loanDetailJoins + "\nWHERE 1=1")

	args := []interface{}{}
	if filter.TallerCodigo != "" {
		args = append(args, filter.TallerCodigo)
		fmt.Fprintf(&query, " AND t.tal_codigo = $%d", len(args))
	}
	if filter.Anio > 0 {
		args = append(args, filter.Anio)
		fmt.Fprintf(&query, " AND p.pre_anio = $%d", len(args))
	}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		fmt.Fprintf(&query, " AND p.pre_estado = $%d", len(args))
	}
	if filter.FechaInicio != "" {
		args = append(args, filter.FechaInicio)
		fmt.Fprintf(&query, " AND p.pre_fecha_inicio >= $%d::date", len(args))
	}
	if filter.FechaFin != "" {
		args = append(args, filter.FechaFin)
		fmt.Fprintf(&query, " AND p.pre_fecha_inicio < $%d::date + INTERVAL '1 day'", len(args))
	}
	query.WriteString("\nORDER BY p.pre_fecha_inicio DESC")

	var loans []models.LoanDetail
	if err := r.db.SelectContext(ctx, &loans, query.String(), args...); err != nil {
		return nil, fmt.Errorf("loan report: %w", err)
	}
	return loans, nil
}

// Problems returns missing and damaged unit reports with context.
func (r *ReportRepository) Problems(ctx context.Context, filter models.ReportFilter) ([]models.ProblemItemDetail, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT
	ip.ip_id,
	ip.pre_id,
	ip.inv_id,
	ip.ip_tipo,
	ip.ip_descripcion,
	ip.ip_estado,
	ip.ip_fecha_reporte,
	ip.ip_fecha_cierre,
	it.itm_codigo,
	it.itm_nombre,
	p.caj_codigo,
	g.gru_numero,
	c.cur_nombre,
	t.tal_nombre
FROM items_problematicos ip
JOIN inv_items i ON i.inv_id = ip.inv_id
JOIN items it ON it.itm_codigo = i.itm_codigo
LEFT JOIN talleres t ON t.tal_codigo = it.tal_codigo
LEFT JOIN prestamos p ON p.pre_id = ip.pre_id
LEFT JOIN grupos g ON g.gru_id = p.gru_id
LEFT JOIN cursos c ON c.cur_codigo = g.cur_codigo
WHERE 1=1`)

	args := []interface{}{}
	if filter.TallerCodigo != "" {
		args = append(args, filter.TallerCodigo)
		fmt.Fprintf(&query, " AND t.tal_codigo = $%d", len(args))
	}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		fmt.Fprintf(&query, " AND ip.ip_estado = $%d", len(args))
	}
	if filter.FechaInicio != "" {
		args = append(args, filter.FechaInicio)
		fmt.Fprintf(&query, " AND ip.ip_fecha_reporte >= $%d::date", len(args))
	}
	if filter.FechaFin != "" {
		args = append(args, filter.FechaFin)
		fmt.Fprintf(&query, " AND ip.ip_fecha_reporte < $%d::date + INTERVAL '1 day'", len(args))
	}
	query.WriteString("\nORDER BY ip.ip_fecha_reporte DESC")

	var problems []models.ProblemItemDetail
	if err := r.db.SelectContext(ctx, &problems, query.String(), args...); err != nil {
		return nil, fmt.Errorf("problem report: %w", err)
	}
	return problems, nil
}

// History returns the movement trail, filtered and newest first.
func (r *ReportRepository) History(ctx context.Context, filter models.MovementFilter) ([]models.MovementDetail, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT
	h.hm_id,
	h.hm_fecha,
	h.hm_tipo,
	h.hm_observaciones,
	h.caj_codigo,
	h.inv_id,
	h.pre_id,
	h.alu_rut,
	h.doc_rut,
	it.itm_nombre,
	t.tal_nombre,
	d.doc_nombre || ' ' || d.doc_apellido AS doc_nombre,
	g.gru_numero,
	c.cur_nombre
FROM historial_movimientos h
LEFT JOIN inv_items i ON i.inv_id = h.inv_id
LEFT JOIN items it ON it.itm_codigo = i.itm_codigo
LEFT JOIN cajas cj ON cj.caj_codigo = h.caj_codigo
LEFT JOIN talleres t ON t.tal_codigo = cj.tal_codigo
LEFT JOIN docentes d ON d.doc_rut = h.doc_rut
LEFT JOIN prestamos p ON p.pre_id = h.pre_id
LEFT JOIN grupos g ON g.gru_id = p.gru_id
LEFT JOIN cursos c ON c.cur_codigo = g.cur_codigo
WHERE 1=1`)

	args := []interface{}{}
	if filter.Tipo != "" {
		args = append(args, filter.Tipo)
		fmt.Fprintf(&query, " AND h.hm_tipo = $%d", len(args))
	}
	if filter.CajaCodigo != "" {
		args = append(args, filter.CajaCodigo)
		fmt.Fprintf(&query, " AND h.caj_codigo = $%d", len(args))
	}
	if filter.FechaInicio != "" {
		args = append(args, filter.FechaInicio)
		fmt.Fprintf(&query, " AND h.hm_fecha >= $%d::date", len(args))
	}
	if filter.FechaFin != "" {
		args = append(args, filter.FechaFin)
		fmt.Fprintf(&query, " AND h.hm_fecha < $%d::date + INTERVAL '1 day'", len(args))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	args = append(args, limit)
	fmt.Fprintf(&query, "\nORDER BY h.hm_fecha DESC\nLIMIT $%d", len(args))

	var movements []models.MovementDetail
	if err := r.db.SelectContext(ctx, &movements, query.String(), args...); err != nil {
		return nil, fmt.Errorf("history report: %w", err)
	}
	return movements, nil
}

// InventorySummary returns catalog rows with counts for the stock report.
func (r *ReportRepository) InventorySummary(ctx context.Context, filter models.ReportFilter) ([]models.ItemSummary, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT
	it.itm_codigo,
	it.itm_nombre,
	it.itm_descripcion,
	it.itm_categoria,
	it.tal_codigo,
	t.tal_nombre,
	COUNT(i.inv_id) AS total_unidades,
	COUNT(i.inv_id) FILTER (WHERE i.inv_estado = 'DISPONIBLE') AS unidades_disponibles,
	COUNT(i.inv_id) FILTER (WHERE i.inv_estado = 'ASIGNADO') AS unidades_asignadas,
	COUNT(i.inv_id) FILTER (WHERE i.inv_estado = 'EXTRAVIADO') AS unidades_extraviadas
FROM items it
LEFT JOIN talleres t ON t.tal_codigo = it.tal_codigo
LEFT JOIN inv_items i ON i.itm_codigo = it.itm_codigo
WHERE 1=1`)

	args := []interface{}{}
	if filter.TallerCodigo != "" {
		args = append(args, filter.TallerCodigo)
		fmt.Fprintf(&query, " AND it.tal_codigo = $%d", len(args))
	}
	query.WriteString(`
GROUP BY it.itm_codigo, it.itm_nombre, it.itm_descripcion, it.itm_categoria, it.tal_codigo, t.tal_nombre
ORDER BY t.tal_nombre ASC, it.itm_nombre ASC`)

	var items []models.ItemSummary
	if err := r.db.SelectContext(ctx, &items, query.String(), args...); err != nil {
		return nil, fmt.Errorf("inventory report: %w", err)
	}
	return items, nil
}
