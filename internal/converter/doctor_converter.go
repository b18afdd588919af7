package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              profile.ID,
		UserID:          profile.UserID,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		FullName:        profile.FullName(),
		Specialization:  profile.Specialization,
		Qualification:   profile.Qualification,
		Phone:           profile.Phone,
		ConsultationFee: profile.ConsultationFee,
	}
	if profile.User != nil {
		response.Email = profile.User.Email
	}
	if len(profile.Schedules) > 0 {
		response.Schedules = SchedulesToResponses(profile.Schedules)
	}

	return response
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}
