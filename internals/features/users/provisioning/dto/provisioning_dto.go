// file: internals/features/users/provisioning/dto/provisioning_dto.go
package dto

// Claves camelCase: es el contrato público del endpoint admin-create-user.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	FullName     string `json:"fullName,omitempty"`
	RoleName     string `json:"roleName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	SignatureURL string `json:"signatureUrl,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
}
