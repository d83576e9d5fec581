package models

// Student statuses.
const (
	StudentStatusActive    = "ACTIVO"
	StudentStatusInactive  = "INACTIVO"
	StudentStatusGraduated = "EGRESADO"
)

// Student represents an enrolled student.
type Student struct {
	Rut         string  `db:"alu_rut" json:"alu_rut"`
	Nombres     string  `db:"alu_nombres" json:"alu_nombres"`
	Apellidos   string  `db:"alu_apellidos" json:"alu_apellidos"`
	Email       *string `db:"alu_email" json:"alu_email"`
	Telefono    *string `db:"alu_telefono" json:"alu_telefono"`
	Estado      string  `db:"alu_estado" json:"alu_estado"`
	AnioIngreso int     `db:"alu_anio_ingreso" json:"alu_anio_ingreso"`
	CursoCodigo *string `db:"cur_codigo" json:"cur_codigo"`
}

// StudentDetail joins the student with course naming for list views.
type StudentDetail struct {
	Student
	CursoNombre *string `db:"cur_nombre" json:"cur_nombre"`
}

// StudentGroup is one group membership of a student, joined for display.
type StudentGroup struct {
	GrupoID      string  `db:"gru_id" json:"gru_id"`
	GrupoNumero  int     `db:"gru_numero" json:"gru_numero"`
	GrupoNombre  *string `db:"gru_nombre" json:"gru_nombre"`
	Anio         int     `db:"gru_anio" json:"gru_anio"`
	Rol          string  `db:"ig_rol" json:"ig_rol"`
	CursoCodigo  *string `db:"cur_codigo" json:"cur_codigo"`
	CursoNombre  *string `db:"cur_nombre" json:"cur_nombre"`
	TallerNombre *string `db:"tal_nombre" json:"tal_nombre"`
}

// StudentFilter narrows student listings.
type StudentFilter struct {
	Estado      string
	CursoCodigo string
	Search      string
}
