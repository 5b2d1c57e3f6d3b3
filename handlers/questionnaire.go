package handlers

import (
	"errors"
	"net/http"

	questionnaireRepo "nutrify/database/repository/questionnaire"
	"nutrify/services/questionnaire"
	"nutrify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuestionnaireHandler exposes the intake wizard and direct submission.
type QuestionnaireHandler struct {
	Service questionnaire.Service
	Logger  *zap.Logger
}

func NewQuestionnaireHandler(svc questionnaire.Service, logger *zap.Logger) *QuestionnaireHandler {
	return &QuestionnaireHandler{Service: svc, Logger: logger}
}

// SubmitHandler accepts a complete record in one POST.
// 200 {sessionId} | 400 validation errors | 500 persistence error.
func (h *QuestionnaireHandler) SubmitHandler(c *gin.Context) {
	var input struct {
		Fields map[string]string `json:"fields"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sessionID, err := h.Service.Submit(c.Request.Context(), input.Fields)
	if err != nil {
		var verr *questionnaire.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": verr.Fields})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not save questionnaire, try again", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}

// GetRecordHandler re-fetches a stored record for the booking and payment
// pages.
func (h *QuestionnaireHandler) GetRecordHandler(c *gin.Context) {
	record, err := h.Service.FindBySessionID(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, questionnaireRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "questionnaire not found", c.Param("sessionId"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load questionnaire", err.Error())
		return
	}
	c.JSON(http.StatusOK, record)
}

// StartDraftHandler opens a new wizard session.
func (h *QuestionnaireHandler) StartDraftHandler(c *gin.Context) {
	session, err := h.Service.StartDraft(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start questionnaire", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetDraftHandler resumes an in-progress wizard session.
func (h *QuestionnaireHandler) GetDraftHandler(c *gin.Context) {
	session, err := h.Service.GetDraft(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetFieldHandler records one answer in the draft.
func (h *QuestionnaireHandler) SetFieldHandler(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "field name is required")
		return
	}

	session, err := h.Service.SetField(c.Request.Context(), c.Param("draftId"), input.Name, input.Value)
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// NextHandler advances the wizard; on the final step it submits.
func (h *QuestionnaireHandler) NextHandler(c *gin.Context) {
	result, err := h.Service.Next(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		var derr *questionnaire.DraftNotFoundError
		if errors.As(err, &derr) {
			utils.JSONError(c, http.StatusNotFound, "questionnaire draft not found", derr.DraftID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "could not save questionnaire, try again", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// PrevHandler steps the wizard back one section.
func (h *QuestionnaireHandler) PrevHandler(c *gin.Context) {
	session, err := h.Service.Prev(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *QuestionnaireHandler) renderDraftError(c *gin.Context, err error) {
	var derr *questionnaire.DraftNotFoundError
	if errors.As(err, &derr) {
		utils.JSONError(c, http.StatusNotFound, "questionnaire draft not found", derr.DraftID)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "questionnaire draft error", err.Error())
}
