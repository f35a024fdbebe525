// Package users предоставляет HTTP-хендлеры регистрации пользователей:
// регистрация, отмена регистрации, список пользователей и чтение поля записи.
package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kazakovdmitriy/go-idioms/internal/database"
)

// UsersHandler обрабатывает HTTP-запросы сервиса регистрации.
type UsersHandler struct {
	service UsersService
	records RecordReader
	log     *zap.Logger
}

// registerRequest - необязательное тело запроса регистрации.
type registerRequest struct {
	Mail string `json:"mail"`
}

func NewUsersHandler(service UsersService, records RecordReader, log *zap.Logger) *UsersHandler {
	return &UsersHandler{
		service: service,
		records: records,
		log:     log,
	}
}

// Register обрабатывает POST /users/{username}.
// Тело {"mail": "..."} необязательно. Отвечает 201, либо 409, если пользователь уже есть.
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req registerRequest
	if r.Body != nil && r.ContentLength != 0 {
		if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			h.logAndWriteError(
				w,
				fmt.Errorf("unsupported content type"),
				http.StatusUnsupportedMediaType,
				"unsupported content type",
				zap.String("content_type", r.Header.Get("Content-Type")),
			)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logAndWriteError(w, err, http.StatusBadRequest, "invalid JSON in request")
			return
		}
	}

	if err := h.service.Register(username, req.Mail); err != nil {
		h.logAndWriteError(w, err, statusFor(err), "failed to register user", zap.String("username", username))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Unregister обрабатывает DELETE /users/{username}. Отвечает 404, если пользователя нет.
func (h *UsersHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.service.Unregister(username); err != nil {
		h.logAndWriteError(w, err, statusFor(err), "failed to unregister user", zap.String("username", username))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ListUsers обрабатывает GET /users/ и возвращает все записи в JSON.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(h.records.GetAllRecords()); err != nil {
		h.log.Error("error encoding response", zap.Error(err))
	}
}

// GetField обрабатывает GET /users/{username}/{field} и возвращает значение поля текстом.
func (h *UsersHandler) GetField(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	field := chi.URLParam(r, "field")

	value, err := h.records.GetRecordField(username, field)
	if err != nil {
		h.logAndWriteError(w, err, statusFor(err), "failed to get field",
			zap.String("username", username), zap.String("field", field))
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, value)
}

// statusFor сопоставляет ошибки базы с HTTP-статусами.
// Остальные ошибки, включая сбои наблюдателей, дают 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, database.ErrIdentifierAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, database.ErrIdentifierNotExists), errors.Is(err, database.ErrFieldNotExists):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// logAndWriteError логирует ошибку с дополнительными полями и отправляет HTTP-ошибку клиенту.
func (h *UsersHandler) logAndWriteError(
	w http.ResponseWriter,
	err error,
	statusCode int,
	msg string,
	fields ...zap.Field,
) {
	logEntry := h.log.With(fields...)
	logEntry.Error(msg, zap.Error(err))
	http.Error(w, msg, statusCode)
}
