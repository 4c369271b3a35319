package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadquiz-service/internal/models"
	"leadquiz-service/internal/service"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// CreateSession starts a new quiz session and returns the initially
// visible questions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session := h.Service.CreateSession()
	questions, _ := h.Service.VisibleQuestions(session.ID)
	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"status":     session.Status,
		"questions":  questions,
	})
}

// GetSession returns the session status and the currently-visible
// question list; resolved sessions also carry the result.
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Service.GetSession(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	questions, _ := h.Service.VisibleQuestions(id)
	resp := gin.H{
		"session_id": session.ID,
		"status":     session.Status,
		"questions":  questions,
	}
	if outcome, err := h.Service.Outcome(id); err == nil {
		resp["result"] = outcome
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAnswers applies one batch of {name, value} selections for the
// current step.
func (h *SessionHandler) SubmitAnswers(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Selections []models.SelectedOption `json:"selections" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	result, err := h.Service.SubmitAnswers(id, req.Selections)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	if len(result.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	if result.NeedContact {
		c.JSON(http.StatusOK, result)
		return
	}

	// Contact already captured: the step submission completes the flow.
	h.finalize(c, id)
}

// SubmitContact captures the lead's email and completes the flow.
func (h *SessionHandler) SubmitContact(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "A valid email address is required",
			"details": err.Error(),
		})
		return
	}

	if err := h.Service.SetContact(id, req.Email); err != nil {
		h.writeSessionError(c, err)
		return
	}
	h.finalize(c, id)
}

// SubmitSession finalizes a session whose contact email is already
// captured.
func (h *SessionHandler) SubmitSession(c *gin.Context) {
	h.finalize(c, c.Param("id"))
}

func (h *SessionHandler) finalize(c *gin.Context, id string) {
	outcome, validationErrs, err := h.Service.Finalize(c.Request.Context(), id)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	if len(validationErrs) > 0 {
		status := service.StatusAnswering
		if session, err := h.Service.GetSession(id); err == nil {
			status = session.Status
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": status,
			"errors": validationErrs,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": service.StatusResolved,
		"result": outcome,
	})
}

// GetResult returns the retained outcome of a resolved session.
func (h *SessionHandler) GetResult(c *gin.Context) {
	outcome, err := h.Service.Outcome(c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": service.StatusResolved,
		"result": outcome,
	})
}

// RestartSession resets all session state for a fresh run.
func (h *SessionHandler) RestartSession(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Restart(id); err != nil {
		h.writeSessionError(c, err)
		return
	}
	questions, _ := h.Service.VisibleQuestions(id)
	c.JSON(http.StatusOK, gin.H{
		"session_id": id,
		"status":     service.StatusAnswering,
		"questions":  questions,
	})
}

func (h *SessionHandler) writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, service.ErrSubmissionInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
	case errors.Is(err, service.ErrSessionResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "Session is already resolved; restart to run again"})
	case errors.Is(err, service.ErrContactRequired):
		c.JSON(http.StatusConflict, gin.H{"error": "Contact email is required before submission"})
	case errors.Is(err, service.ErrNotResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "Session has no result yet"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
