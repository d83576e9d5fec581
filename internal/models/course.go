package models

// Course is a class section tied to a workshop for the year.
type Course struct {
	Codigo       string  `db:"cur_codigo" json:"cur_codigo"`
	Nombre       string  `db:"cur_nombre" json:"cur_nombre"`
	Nivel        *string `db:"cur_nivel" json:"cur_nivel"`
	Letra        *string `db:"cur_letra" json:"cur_letra"`
	Anio         int     `db:"cur_anio" json:"cur_anio"`
	Cupos        *int    `db:"cur_cupos" json:"cur_cupos"`
	TallerCodigo *string `db:"tal_codigo" json:"tal_codigo"`
}

// CourseDetail joins the course with its workshop name and student count.
type CourseDetail struct {
	Course
	TallerNombre *string `db:"tal_nombre" json:"tal_nombre"`
	TotalAlumnos int     `db:"total_alumnos" json:"total_alumnos"`
	TotalGrupos  int     `db:"total_grupos" json:"total_grupos"`
}

// CreateCourseRequest registers a course section.
type CreateCourseRequest struct {
	Codigo       string `json:"cur_codigo" validate:"required"`
	Nombre       string `json:"cur_nombre" validate:"required"`
	Nivel        string `json:"cur_nivel"`
	Letra        string `json:"cur_letra"`
	Anio         int    `json:"cur_anio" validate:"required,min=2000"`
	Cupos        int    `json:"cur_cupos" validate:"omitempty,min=1"`
	TallerCodigo string `json:"tal_codigo"`
}
