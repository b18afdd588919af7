package handler

import (
	"errors"
	"net/http"

	"hospital-management/internal/usecase"
	"hospital-management/pkg/response"
)

type DoctorHandler struct {
	userUsecase     usecase.UserUsecase
	scheduleUsecase usecase.DoctorScheduleUsecase
}

func NewDoctorHandler(userUsecase usecase.UserUsecase, scheduleUsecase usecase.DoctorScheduleUsecase) *DoctorHandler {
	return &DoctorHandler{
		userUsecase:     userUsecase,
		scheduleUsecase: scheduleUsecase,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.userUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(w, r, "doctor")
	if !ok {
		return
	}

	schedules, err := h.scheduleUsecase.ListByDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}
