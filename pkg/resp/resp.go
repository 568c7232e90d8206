package resp

import (
	"net/http"

	"github.com/go-chi/render"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteJSONResponse(w, r, status, ErrorResponse{Success: false, Error: msg})
}
