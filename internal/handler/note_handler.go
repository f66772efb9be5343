package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stolovaya/canteen-api/internal/service"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
	"github.com/stolovaya/canteen-api/pkg/response"
)

// NoteHandler wires the notes CRUD endpoints.
type NoteHandler struct {
	service *service.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{service: svc}
}

// Add handles POST /note.
func (h *NoteHandler) Add(c *gin.Context) {
	var req service.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SoftError(c, appErrors.Clone(appErrors.ErrValidation, "student_id, author_id и text обязательны"))
		return
	}

	note, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.SoftError(c, err)
		return
	}

	response.JSON(c, gin.H{"message": "ok", "id": note.ID})
}

// List handles GET /notes/:student_id.
func (h *NoteHandler) List(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("student_id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Не найдено"))
		return
	}

	notes, err := h.service.ForStudent(c.Request.Context(), studentID)
	if err != nil {
		response.SoftError(c, err)
		return
	}

	response.JSON(c, notes)
}

// Delete handles DELETE /note/:id.
func (h *NoteHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Не найдено"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.SoftError(c, err)
		return
	}

	response.Message(c, "Удалено")
}
