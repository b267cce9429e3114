package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/record"
	"github.com/go-chi/chi/v5"
)

// pathID reads a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return record.ParseID(name, chi.URLParam(r, name))
}
