package users

import (
	"errors"
	"net/http"
	"time"

	"pet-adoption-api/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc))
		ur.Get("/{userID}", getUserHandler(svc))
		ur.Put("/{userID}", updateUserHandler(svc))
		ur.Delete("/{userID}", deleteUserHandler(svc))
	})
}

// createUserRequest es el cuerpo para registrar un usuario.
type createUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role" enums:"user,admin"`
}

// updateUserRequest: punteros para distinguir "no enviado".
type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Role      *Role   `json:"role" enums:"user,admin"`
}

// UserResponse representa un usuario devuelto por la API (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Pets      []string  `json:"pets"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// listUsersHandler godoc
// @Summary Obtener todos los usuarios
// @Tags users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]UserResponse, 0, len(items))
		for _, u := range items {
			out = append(out, ToResponse(u))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// createUserHandler godoc
// @Summary Crear un nuevo usuario
// @Description La contraseña se guarda como hash bcrypt. El email debe ser único.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "Datos del usuario"
// @Success 201 {object} UserResponse
// @Failure 400 {object} httpjson.ErrorResponse "datos inválidos / Email ya existe"
// @Failure 500 {object} httpjson.ErrorResponse
// @Router /users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
			Role:      req.Role,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, ToResponse(u))
	}
}

// getUserHandler godoc
// @Summary Obtener un usuario por ID
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} UserResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /users/{userID} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(u))
	}
}

// updateUserHandler godoc
// @Summary Actualizar un usuario
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param payload body updateUserRequest true "Campos a modificar"
// @Success 200 {object} UserResponse
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /users/{userID} [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateUserRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Update(r.Context(), chi.URLParam(r, "userID"), UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Role:      req.Role,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, ToResponse(u))
	}
}

// deleteUserHandler godoc
// @Summary Eliminar un usuario
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} httpjson.MessageResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /users/{userID} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
			writeServiceError(w, err)
			return
		}
		httpjson.Message(w, http.StatusOK, "Usuario eliminado exitosamente")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Error(w, http.StatusBadRequest, "Datos de entrada inválidos")
	case errors.Is(err, ErrConflict):
		httpjson.Error(w, http.StatusBadRequest, "Email ya existe")
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "Usuario no encontrado")
	default:
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
	}
}

// ToResponse se exporta para que mocks/adopciones reutilicen la misma forma.
func ToResponse(u User) UserResponse {
	pets := u.Pets
	if pets == nil {
		pets = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Pets:      pets,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
