// file: internals/features/users/user/model/institution_member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InstitutionMemberModel: vínculo usuario↔institución. Clave compuesta
// (user, institution); el aprovisionamiento hace upsert sobre ella.
type InstitutionMemberModel struct {
	MemberUserID        uuid.UUID `gorm:"type:uuid;primaryKey;column:member_user_id" json:"member_user_id"`
	MemberInstitutionID uuid.UUID `gorm:"type:uuid;primaryKey;column:member_institution_id" json:"member_institution_id"`

	MemberRole     string `gorm:"type:varchar(20);not null;column:member_role" json:"member_role"`
	MemberIsActive bool   `gorm:"not null;default:true;column:member_is_active" json:"member_is_active"`

	// documento opaco de permisos (JSONB)
	MemberPermissions datatypes.JSONMap `gorm:"type:jsonb;column:member_permissions" json:"member_permissions,omitempty"`

	MemberCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:member_created_at" json:"member_created_at"`
	MemberUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:member_updated_at" json:"member_updated_at"`
}

func (InstitutionMemberModel) TableName() string { return "institution_members" }
