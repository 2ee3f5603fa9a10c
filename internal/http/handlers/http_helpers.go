package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/yeasin-dev/shopmate/internal/inventory"
	"github.com/yeasin-dev/shopmate/internal/repo"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// writeDomainError maps the domain error kinds onto HTTP status codes:
// NotFound 404, InvalidRequest and ValidationFailure 400, everything
// else 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var de *inventory.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case inventory.KindNotFound:
			writeJSON(w, http.StatusNotFound, errorResponse{Message: de.Message})
		case inventory.KindInvalidRequest:
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: de.Message})
		case inventory.KindValidation:
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: de.Message, Errors: de.Details})
		default:
			log.Printf("internal error: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
		}
		return
	}
	log.Printf("internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
}

// parseListFilter reads search/page/limit/sort query parameters. Page and
// limit must be at least 1 when supplied.
func parseListFilter(r *http.Request) (repo.ListFilter, error) {
	q := r.URL.Query()
	f := repo.ListFilter{
		Search:    q.Get("search"),
		Page:      1,
		Limit:     10,
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	if s := q.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return repo.ListFilter{}, errors.New("page must be a positive integer")
		}
		f.Page = v
	}
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return repo.ListFilter{}, errors.New("limit must be a positive integer")
		}
		f.Limit = v
	}
	return f, nil
}

// totalPages computes the page count reported in listing metadata.
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}
