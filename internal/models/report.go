package models

// ReportFilter narrows the reporting queries. Dates use YYYY-MM-DD.
type ReportFilter struct {
	TallerCodigo string
	Anio         int
	Estado       string
	FechaInicio  string
	FechaFin     string
}

// ReviewChecklist is what the reviewer sees before closing a loan: the
// loan header plus every unit the box held when it was assigned.
type ReviewChecklist struct {
	Prestamo LoanDetail           `json:"prestamo"`
	Items    []ToolboxContentItem `json:"items"`
}

// Report export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)
