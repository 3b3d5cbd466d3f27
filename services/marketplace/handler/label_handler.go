package handler

import (
	"fmt"
	"net/http"

	label "bidstar/internal/labelService"
	model "bidstar/internal/models"
	"bidstar/services/marketplace/helpers"
	"bidstar/utils"

	"github.com/gin-gonic/gin"
)

type LabelServiceInterface interface {
	Register(req label.RegisterRequest) (model.RecordLabel, error)
	GetLabel(labelID string) (model.RecordLabel, error)
	ListLabels() ([]model.RecordLabel, error)
}

type LabelHandler struct {
	service LabelServiceInterface
}

func NewLabelHandler(service LabelServiceInterface) *LabelHandler {
	return &LabelHandler{service: service}
}

// RegisterLabelHandler handles POST /labels
func (h *LabelHandler) RegisterLabelHandler(c *gin.Context) {
	var req helpers.RegisterLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterLabelHandler", err)
		return
	}

	created, err := h.service.Register(label.RegisterRequest{
		Name:          req.Name,
		Email:         req.Email,
		Location:      req.Location,
		Description:   req.Description,
		Website:       req.Website,
		Established:   req.Established,
		Genres:        req.Genres,
		AgreedToTerms: req.AgreedToTerms,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterLabelHandler: registration rejected", map[string]any{"name": req.Name, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "label registered successfully")
	helpers.LogSuccess("RegisterLabelHandler", "label registered successfully", map[string]any{
		"label_id": created.LabelID,
		"genres":   created.Genres,
	})
}

// ListLabelsHandler handles GET /labels
func (h *LabelHandler) ListLabelsHandler(c *gin.Context) {
	labels, err := h.service.ListLabels()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListLabelsHandler: error retrieving labels", map[string]any{"error": err.Error()})
		return
	}

	if labels == nil {
		labels = []model.RecordLabel{}
	}

	utils.JSONResponse(c, http.StatusOK, labels, "labels retrieved successfully")
	helpers.LogSuccess("ListLabelsHandler", "labels retrieved successfully", map[string]any{
		"count": len(labels),
	})
}

// GetLabelHandler handles GET /labels/:label_id
func (h *LabelHandler) GetLabelHandler(c *gin.Context) {
	labelID := c.Param("label_id")

	l, err := h.service.GetLabel(labelID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetLabelHandler: error retrieving label", map[string]any{"label_id": labelID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, l, "label retrieved successfully")
	helpers.LogSuccess("GetLabelHandler", "label retrieved successfully", map[string]any{
		"label_id": labelID,
	})
}
