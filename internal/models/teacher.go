package models

// Teacher statuses.
const (
	TeacherStatusActive   = "ACTIVO"
	TeacherStatusInactive = "INACTIVO"
)

// RoleTeacher is the only role the system issues today.
const RoleTeacher = "DOCENTE"

// Teacher represents a staff member allowed to authorize loans.
type Teacher struct {
	Rut          string  `db:"doc_rut" json:"doc_rut"`
	Nombre       string  `db:"doc_nombre" json:"doc_nombre"`
	Apellido     string  `db:"doc_apellido" json:"doc_apellido"`
	Email        string  `db:"doc_email" json:"doc_email"`
	Estado       string  `db:"doc_estado" json:"doc_estado"`
	PasswordHash *string `db:"doc_password_hash" json:"-"`
}
