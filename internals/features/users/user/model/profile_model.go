// file: internals/features/users/user/model/profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel: perfil de cuenta. profile_id = id de la cuenta en el servicio
// de auth; la fila la crea un trigger al darse de alta la cuenta y el
// aprovisionamiento la alinea (institución, rol, nombre).
type ProfileModel struct {
	ProfileID            uuid.UUID  `gorm:"type:uuid;primaryKey;column:profile_id" json:"profile_id"`
	ProfileInstitutionID *uuid.UUID `gorm:"type:uuid;column:profile_institution_id" json:"profile_institution_id,omitempty"`

	ProfileRole     string `gorm:"type:varchar(20);not null;default:'student';column:profile_role" json:"profile_role"`
	ProfileIsActive bool   `gorm:"not null;default:true;column:profile_is_active" json:"profile_is_active"`

	ProfileFullName string `gorm:"type:varchar(120);column:profile_full_name" json:"profile_full_name"`
	ProfileEmail    string `gorm:"type:varchar(255);column:profile_email" json:"profile_email"`

	ProfileCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:profile_created_at" json:"profile_created_at"`
	ProfileUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:profile_updated_at" json:"profile_updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }
