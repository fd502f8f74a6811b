// Package httpjson reúne los helpers JSON compartidos por los handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrEmptyBody: el request no trae body.
var ErrEmptyBody = errors.New("empty body")

// maxBody limita el tamaño de los bodies aceptados (1MB).
const maxBody = 1 << 20

// ErrorResponse es el cuerpo estándar de error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse es el cuerpo de confirmación (p.ej. DELETE).
type MessageResponse struct {
	Message string `json:"message"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, ErrorResponse{Error: msg})
}

func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, MessageResponse{Message: msg})
}

// Decode lee el body en v. Un body vacío es error.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}
