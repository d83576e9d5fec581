package models

// Group member roles.
const (
	GroupRoleMember      = "INTEGRANTE"
	GroupRoleResponsible = "RESPONSABLE"
)

// MaxGroupMembers caps group size; the workshop benches seat three.
const MaxGroupMembers = 3

// Group lifecycle states. INACTIVO hides the group from listings while
// keeping its loan history readable.
const (
	GroupStatusActive   = "ACTIVO"
	GroupStatusInactive = "INACTIVO"
)

// Group is a student work group within a course for one school year.
type Group struct {
	ID          string  `db:"gru_id" json:"gru_id"`
	Numero      int     `db:"gru_numero" json:"gru_numero"`
	Nombre      *string `db:"gru_nombre" json:"gru_nombre"`
	CursoCodigo string  `db:"cur_codigo" json:"cur_codigo"`
	Anio        int     `db:"gru_anio" json:"gru_anio"`
	Estado      string  `db:"gru_estado" json:"gru_estado"`
}

// GroupDetail joins the group with course and workshop naming.
type GroupDetail struct {
	Group
	CursoNombre      *string `db:"cur_nombre" json:"cur_nombre"`
	TallerCodigo     *string `db:"tal_codigo" json:"tal_codigo"`
	TallerNombre     *string `db:"tal_nombre" json:"tal_nombre"`
	TotalIntegrantes int     `db:"total_integrantes" json:"total_integrantes"`
}

// GroupMember is one student's membership in a group.
type GroupMember struct {
	ID        string `db:"ig_id" json:"ig_id"`
	GrupoID   string `db:"gru_id" json:"gru_id"`
	AlumnoRut string `db:"alu_rut" json:"alu_rut"`
	Rol       string `db:"ig_rol" json:"ig_rol"`
	Nombres   string `db:"alu_nombres" json:"alu_nombres"`
	Apellidos string `db:"alu_apellidos" json:"alu_apellidos"`
	AluEstado string `db:"alu_estado" json:"alu_estado"`
}

// CreateGroupRequest creates a group, optionally with initial members.
type CreateGroupRequest struct {
	Numero      int      `json:"numero" validate:"required,min=1"`
	Nombre      string   `json:"nombre"`
	CursoCodigo string   `json:"cur_codigo" validate:"required"`
	Anio        int      `json:"anio" validate:"required,min=2000"`
	Integrantes []string `json:"integrantes" validate:"max=3,dive,required"`
}

// AddMemberRequest adds a student to a group.
type AddMemberRequest struct {
	AlumnoRut string `json:"alu_rut" validate:"required"`
	Rol       string `json:"rol" validate:"omitempty,oneof=INTEGRANTE RESPONSABLE"`
}

// GroupFilter narrows group listings.
type GroupFilter struct {
	CursoCodigo string
	Anio        int
}
