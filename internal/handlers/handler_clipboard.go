package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/services"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/dto"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clipboardHandler handles subtree copy, cut, and paste.
type clipboardHandler struct {
	clipboardService portssvc.ClipboardSvcFacade
}

func newClipboardHandler(cs portssvc.ClipboardSvcFacade) *clipboardHandler {
	return &clipboardHandler{clipboardService: cs}
}

// registerClipboardRoutes registers routes related to the subtree clipboard.
func registerClipboardRoutes(rg *gin.RouterGroup, clipboardService portssvc.ClipboardSvcFacade) {
	h := newClipboardHandler(clipboardService)

	clipboard := rg.Group("/clipboard")
	{
		clipboard.POST("/copy", h.copySubtree)
		clipboard.POST("/cut", h.cutSubtree)
		clipboard.POST("/paste", h.pasteSubtree)
	}
}

// copySubtree godoc
// @Summary Record a subtree for duplication
// @Tags clipboard
// @Accept  json
// @Produce  json
// @Param   request body dto.ClipboardRequest true "Subtree root"
// @Success 200 {object} domain.ClipboardPayload
// @Failure 404 {object} map[string]string "Node not found"
// @Router /clipboard/copy [post]
func (h *clipboardHandler) copySubtree(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClipboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Copy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payload, err := h.clipboardService.Copy(c.Request.Context(), req.NodeID)
	if err != nil {
		respondNodeError(c, err, "Failed to copy subtree")
		return
	}
	c.JSON(http.StatusOK, payload)
}

// cutSubtree godoc
// @Summary Record a subtree as a pending move
// @Tags clipboard
// @Accept  json
// @Produce  json
// @Param   request body dto.ClipboardRequest true "Subtree root"
// @Success 200 {object} domain.ClipboardPayload
// @Failure 404 {object} map[string]string "Node not found"
// @Router /clipboard/cut [post]
func (h *clipboardHandler) cutSubtree(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClipboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Cut", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payload, err := h.clipboardService.Cut(c.Request.Context(), req.NodeID)
	if err != nil {
		respondNodeError(c, err, "Failed to cut subtree")
		return
	}
	c.JSON(http.StatusOK, payload)
}

// pasteSubtree godoc
// @Summary Paste a clipboard payload under an anchor node
// @Description Copy payloads create remapped nodes with fresh codes; cut payloads relocate the original subtree
// @Tags clipboard
// @Accept  json
// @Produce  json
// @Param   request body dto.PasteRequest true "Payload and anchor"
// @Success 200 {object} dto.PasteResult
// @Failure 409 {object} map[string]string "Depth exceeded or cyclic move"
// @Router /clipboard/paste [post]
func (h *clipboardHandler) pasteSubtree(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Paste", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	result, err := h.clipboardService.Paste(c.Request.Context(), req.Payload, req.AnchorNodeID, userID)
	if err != nil {
		respondNodeError(c, err, "Failed to paste subtree")
		return
	}

	logger.Info("Clipboard paste applied", slog.Bool("relocated", result.Relocated), slog.Int("created_count", result.CreatedCount))
	c.JSON(http.StatusOK, result)
}
