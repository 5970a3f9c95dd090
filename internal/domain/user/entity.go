package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role representa o papel do usuário no sistema
type Role string

// Constantes para Role
const (
	RoleAdmin Role = "admin" // Administrador do sistema
	RoleUser  Role = "user"  // Usuário regular
)

// User representa um usuário do sistema
type User struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Password  string    `json:"-" firestore:"password"` // Hash bcrypt; nunca retornado nas respostas
	Role      Role      `json:"role" firestore:"role"`
	CreatedOn time.Time `json:"createdOn" firestore:"createdOn"`
}

// SetPassword configura a senha do usuário com hash bcrypt
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
