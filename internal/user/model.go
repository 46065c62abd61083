package user

import "time"

const (
	RoleAdminMaster = "admin_master"
	RoleEmpresa     = "empresa"
)

type User struct {
	ID        string    `json:"id"`
	EmpresaID *string   `json:"empresa_id,omitempty"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	SenhaHash string    `json:"-"`
	Papel     string    `json:"papel"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest payload of creation.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Nome  string `json:"nome"  example:"Maria Souza"`
	Email string `json:"email" example:"maria@loja.com.br"`
	Senha string `json:"senha" example:"s3nh4-f0rt3"`
}
