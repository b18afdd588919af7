package converter

import (
	"time"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		FullName:    profile.FullName(),
		Phone:       profile.Phone,
		DateOfBirth: formatDate(profile.DateOfBirth),
		BloodGroup:  profile.BloodGroup,
		Address:     profile.Address,
	}
	if profile.User != nil {
		response.Email = profile.User.Email
	}

	return response
}

func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PatientProfileToResponse(&profiles[i])
	}
	return responses
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(entity.DateLayout)
}
