package handler

import (
	"net/http"

	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
)

type PatientHandler struct {
	userUsecase usecase.UserUsecase
}

func NewPatientHandler(userUsecase usecase.UserUsecase) *PatientHandler {
	return &PatientHandler{
		userUsecase: userUsecase,
	}
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.userUsecase.ListPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
