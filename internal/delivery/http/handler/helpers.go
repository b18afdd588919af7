package handler

import (
	"net/http"
	"strconv"

	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/domain/entity"
	"hospital-management/pkg/response"

	"github.com/gorilla/mux"
)

// pathID reads the {id} route variable. It writes a 400 and returns false
// when the value is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request, what string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid "+what+" ID")
		return 0, false
	}
	return id, true
}

// currentActor writes a 401 when the request was not authenticated.
func currentActor(w http.ResponseWriter, r *http.Request) (entity.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return entity.Actor{}, false
	}
	return actor, true
}
