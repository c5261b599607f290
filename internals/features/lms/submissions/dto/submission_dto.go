// file: internals/features/lms/submissions/dto/submission_dto.go
package dto

import "github.com/google/uuid"

type ListSubmissionsQuery struct {
	TaskID uuid.UUID
	Search string
	Offset int
	Limit  int
}
