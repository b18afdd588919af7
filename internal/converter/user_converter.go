package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The role profile is included when it was loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Profile:   ProfileToResponse(user.Profile()),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities to slice of UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// ProfileToResponse flattens any RoleProfile variant.
func ProfileToResponse(profile entity.RoleProfile) *dto.ProfileResponse {
	switch p := profile.(type) {
	case *entity.DoctorProfile:
		fee := p.ConsultationFee
		return &dto.ProfileResponse{
			ID:              p.ID,
			FirstName:       p.FirstName,
			LastName:        p.LastName,
			Phone:           p.Phone,
			Specialization:  p.Specialization,
			Qualification:   p.Qualification,
			ConsultationFee: &fee,
		}
	case *entity.PatientProfile:
		return &dto.ProfileResponse{
			ID:          p.ID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Phone:       p.Phone,
			DateOfBirth: formatDate(p.DateOfBirth),
			BloodGroup:  p.BloodGroup,
			Address:     p.Address,
		}
	case *entity.ReceptionistProfile:
		return &dto.ProfileResponse{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Phone:     p.Phone,
		}
	}
	return nil
}

// ProfileRequestToFields maps request input onto entity.ProfileFields.
func ProfileRequestToFields(req dto.ProfileRequest) entity.ProfileFields {
	return entity.ProfileFields{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Specialization:  req.Specialization,
		Qualification:   req.Qualification,
		ConsultationFee: req.ConsultationFee,
		DateOfBirth:     req.DateOfBirth,
		BloodGroup:      req.BloodGroup,
		Address:         req.Address,
	}
}
