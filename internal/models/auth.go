package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds the credentials posted by the login page. The password
// is optional because legacy teacher rows carry no hash.
type LoginRequest struct {
	Rut      string `json:"rut" validate:"required"`
	Password string `json:"password"`
}

// LoginResponse returns the issued token and teacher info.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expires_in"`
	IssuedAt  time.Time   `json:"issued_at"`
	Teacher   TeacherInfo `json:"docente"`
}

// TeacherInfo describes the authenticated teacher in responses.
type TeacherInfo struct {
	Rut      string `json:"rut"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
}

// JWTClaims is the access-token payload.
type JWTClaims struct {
	Rut    string `json:"rut"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}
