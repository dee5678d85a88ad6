package controller

import (
	"net/http"

	"github.com/go-chi/render"
)

// errorJSON writes the sanitized error body shape used across the API.
func errorJSON(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"message": msg})
}
