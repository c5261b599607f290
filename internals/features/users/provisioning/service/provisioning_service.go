// file: internals/features/users/provisioning/service/provisioning_service.go
package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aulavirtual_backend/internals/constants"
	"aulavirtual_backend/internals/features/users/provisioning/dto"
	usermodel "aulavirtual_backend/internals/features/users/user/model"
	"aulavirtual_backend/internals/gateway"
	helper "aulavirtual_backend/internals/helpers"
)

const (
	profilesTable = "profiles"
	membersTable  = "institution_members"
)

// ProvisioningService crea cuentas por pedido de un administrador: verifica
// autoridad vía RPC, resuelve la institución del caller, crea la cuenta con
// la credencial de servicio y alinea perfil + membresía.
type ProvisioningService struct {
	store    gateway.Store
	accounts AccountsClient
}

func NewProvisioningService(store gateway.Store, accounts AccountsClient) *ProvisioningService {
	return &ProvisioningService{store: store, accounts: accounts}
}

type CreateUserResult struct {
	UserID string
	Email  string

	// la alineación de perfil/membresía falló después de crear la cuenta
	Partial bool
	Warning string
}

func (s *ProvisioningService) CreateUser(ctx context.Context, callerID uuid.UUID, req dto.CreateUserRequest) (*CreateUserResult, error) {
	// AUTHORIZE: la RPC corre como el caller
	var isAdmin bool
	if err := s.store.RPC(ctx, "is_admin", &isAdmin, callerID); err != nil {
		return nil, helper.NewUpstreamError(err.Error())
	}
	if !isAdmin {
		return nil, helper.NewAuthorizationError("Solo los administradores pueden crear usuarios")
	}

	// RESOLVE_TENANT: puede ser null (admin sin institución todavía); en ese
	// caso se aprovisiona sin alineación.
	var callerProfiles []usermodel.ProfileModel
	if _, err := s.store.Select(ctx, gateway.Query{
		Table:   profilesTable,
		Filters: gateway.Filter{"profile_id": callerID},
		Limit:   1,
	}, &callerProfiles); err != nil {
		return nil, helper.NewUpstreamError(err.Error())
	}
	var institutionID *uuid.UUID
	if len(callerProfiles) > 0 {
		institutionID = callerProfiles[0].ProfileInstitutionID
	}

	// VALIDATE_INPUT
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, helper.NewValidationError("Email y contraseña son obligatorios")
	}
	if len(req.Password) < 6 {
		return nil, helper.NewValidationError("La contraseña debe tener al menos 6 caracteres")
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		fullName = emailLocalPart(email)
	}
	role := strings.TrimSpace(req.RoleName)
	if role == "" {
		role = constants.RoleStudent
	}

	// CREATE_ACCOUNT: credencial de servicio, nunca el token del caller
	account, err := s.accounts.CreateUser(ctx, CreateAccountRequest{
		Email:        email,
		Password:     req.Password,
		EmailConfirm: true,
		UserMetadata: map[string]any{
			"full_name":        fullName,
			"role":             role,
			"phone":            req.Phone,
			"signature_url":    req.SignatureURL,
			"photo_url":        req.PhotoURL,
			"created_by_admin": true,
		},
	})
	if err != nil {
		return nil, helper.NewUpstreamError(err.Error())
	}

	result := &CreateUserResult{UserID: account.ID, Email: account.Email}

	// ALIGN_TENANT: sólo con institución resuelta. Un fallo acá no revierte
	// la cuenta ya creada: se loggea y se reporta como éxito parcial en vez
	// de tragarse el error.
	if institutionID != nil {
		if err := s.alignTenant(ctx, account.ID, *institutionID, fullName, role); err != nil {
			log.Printf("[ERROR] alineación de perfil/membresía falló para %s: %v", account.ID, err)
			result.Partial = true
			result.Warning = "La cuenta se creó pero la alineación de perfil/membresía falló: " + err.Error()
		}
	}

	return result, nil
}

func (s *ProvisioningService) alignTenant(ctx context.Context, accountID string, institutionID uuid.UUID, fullName, role string) error {
	newUserID, err := uuid.Parse(accountID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.store.Update(ctx, profilesTable, map[string]any{
		"profile_full_name":      fullName,
		"profile_role":           role,
		"profile_institution_id": institutionID,
		"profile_is_active":      true,
		"profile_updated_at":     now,
	}, gateway.Filter{"profile_id": newUserID}); err != nil {
		return err
	}

	member := usermodel.InstitutionMemberModel{
		MemberUserID:        newUserID,
		MemberInstitutionID: institutionID,
		MemberRole:          role,
		MemberIsActive:      true,
		MemberPermissions:   datatypes.JSONMap{},
		MemberCreatedAt:     now,
		MemberUpdatedAt:     now,
	}
	return s.store.Upsert(ctx, membersTable, &member,
		[]string{"member_user_id", "member_institution_id"},
		[]string{"member_role", "member_is_active", "member_updated_at"})
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
