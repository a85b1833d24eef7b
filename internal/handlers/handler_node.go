package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/apperrors"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portssvc "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/services"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/dto"
	"github.com/Namer-kimhyojin/Budget-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// nodeHandler handles HTTP requests related to hierarchy nodes.
type nodeHandler struct {
	nodeService       portssvc.NodeSvcFacade
	relocationService portssvc.RelocationSvcFacade
	reorderService    portssvc.ReorderSvcFacade
	treeService       portssvc.TreeSvcFacade
}

// newNodeHandler creates a new nodeHandler.
func newNodeHandler(ns portssvc.NodeSvcFacade, rs portssvc.RelocationSvcFacade, os portssvc.ReorderSvcFacade, ts portssvc.TreeSvcFacade) *nodeHandler {
	return &nodeHandler{
		nodeService:       ns,
		relocationService: rs,
		reorderService:    os,
		treeService:       ts,
	}
}

// registerNodeRoutes registers routes related to nodes.
func registerNodeRoutes(rg *gin.RouterGroup, ns portssvc.NodeSvcFacade, rs portssvc.RelocationSvcFacade, os portssvc.ReorderSvcFacade, ts portssvc.TreeSvcFacade) {
	h := newNodeHandler(ns, rs, os, ts)

	nodes := rg.Group("/nodes")
	{
		nodes.POST("", h.createNode)
		nodes.GET("", h.listNodes)
		nodes.POST("/reorder", h.reorderNodes)
		nodes.GET("/:nodeID", h.getNode)
		nodes.PUT("/:nodeID", h.renameNode)
		nodes.DELETE("/:nodeID", h.deleteNode)
		nodes.POST("/:nodeID/relocate", h.relocateNode)
		nodes.POST("/:nodeID/promote", h.promoteNode)
		nodes.POST("/:nodeID/demote", h.demoteNode)
	}
}

// respondNodeError maps service errors to HTTP statuses.
func respondNodeError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var partial *apperrors.PartialFailureError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDepthExceeded), errors.Is(err, apperrors.ErrCyclicMove), errors.Is(err, apperrors.ErrLinkedEntries):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &partial):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     partial.Error(),
			"completed": partial.Completed,
			"total":     partial.Total,
		})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// createNode godoc
// @Summary Create a new hierarchy node
// @Description Creates a new root or child node in a family's hierarchy
// @Tags nodes
// @Accept  json
// @Produce  json
// @Param   node body dto.CreateNodeRequest true "Node details"
// @Success 201 {object} dto.NodeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Depth exceeded"
// @Router /nodes [post]
func (h *nodeHandler) createNode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateNode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	node, err := h.nodeService.CreateNode(c.Request.Context(), req, userID)
	if err != nil {
		respondNodeError(c, err, "Failed to create node")
		return
	}

	logger.Info("Node created successfully", slog.String("node_id", node.NodeID))
	c.JSON(http.StatusCreated, dto.ToNodeResponse(node))
}

// getNode godoc
// @Summary Get a node by ID
// @Description Retrieves details for a specific node
// @Tags nodes
// @Produce  json
// @Param   nodeID path string true "Node ID"
// @Success 200 {object} dto.NodeResponse
// @Failure 404 {object} map[string]string "Node not found"
// @Router /nodes/{nodeID} [get]
func (h *nodeHandler) getNode(c *gin.Context) {
	node, err := h.nodeService.GetNodeByID(c.Request.Context(), c.Param("nodeID"))
	if err != nil {
		respondNodeError(c, err, "Failed to get node")
		return
	}
	c.JSON(http.StatusOK, dto.ToNodeResponse(node))
}

// listNodes godoc
// @Summary List nodes of a family and category
// @Tags nodes
// @Produce  json
// @Param   family query string true "Node family (SUBJECT or ORGANIZATION)"
// @Param   category query string false "Category filter"
// @Success 200 {array} dto.NodeResponse
// @Router /nodes [get]
func (h *nodeHandler) listNodes(c *gin.Context) {
	family := domain.NodeFamily(c.DefaultQuery("family", string(domain.FamilySubject)))
	category := domain.Category(c.Query("category"))

	nodes, err := h.nodeService.ListNodes(c.Request.Context(), family, category)
	if err != nil {
		respondNodeError(c, err, "Failed to list nodes")
		return
	}
	c.JSON(http.StatusOK, dto.ToNodeResponses(nodes))
}

// renameNode godoc
// @Summary Rename a node
// @Description Updates a node's display name and description
// @Tags nodes
// @Accept  json
// @Produce  json
// @Param   nodeID path string true "Node ID"
// @Param   node body dto.UpdateNodeRequest true "Fields to update"
// @Success 200 {object} dto.NodeResponse
// @Failure 404 {object} map[string]string "Node not found"
// @Router /nodes/{nodeID} [put]
func (h *nodeHandler) renameNode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RenameNode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	node, err := h.nodeService.RenameNode(c.Request.Context(), c.Param("nodeID"), req, userID)
	if err != nil {
		respondNodeError(c, err, "Failed to rename node")
		return
	}
	c.JSON(http.StatusOK, dto.ToNodeResponse(node))
}

// deleteNode godoc
// @Summary Delete a node and its subtree
// @Description Cascade delete; refused when budget entries reference the subtree
// @Tags nodes
// @Produce  json
// @Param   nodeID path string true "Node ID"
// @Success 204 "Deleted"
// @Failure 409 {object} map[string]string "Linked entries exist"
// @Router /nodes/{nodeID} [delete]
func (h *nodeHandler) deleteNode(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	if err := h.nodeService.DeleteNode(c.Request.Context(), c.Param("nodeID"), userID); err != nil {
		respondNodeError(c, err, "Failed to delete node")
		return
	}
	c.Status(http.StatusNoContent)
}

// relocateNode godoc
// @Summary Relocate a node under a new parent
// @Description Moves the node and its whole subtree, recomputing levels
// @Tags nodes
// @Accept  json
// @Produce  json
// @Param   nodeID path string true "Node ID"
// @Param   target body dto.RelocateNodeRequest true "New parent (empty = make root)"
// @Success 204 "Relocated"
// @Failure 409 {object} map[string]string "Depth exceeded or cyclic move"
// @Router /nodes/{nodeID}/relocate [post]
func (h *nodeHandler) relocateNode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RelocateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RelocateNode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	if err := h.relocationService.Relocate(c.Request.Context(), c.Param("nodeID"), req.NewParentNodeID, userID); err != nil {
		respondNodeError(c, err, "Failed to relocate node")
		return
	}
	c.Status(http.StatusNoContent)
}

// promoteNode godoc
// @Summary Promote a node to its grandparent
// @Tags nodes
// @Produce  json
// @Param   nodeID path string true "Node ID"
// @Success 204 "Promoted"
// @Failure 400 {object} map[string]string "Node already at level 1"
// @Router /nodes/{nodeID}/promote [post]
func (h *nodeHandler) promoteNode(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	if err := h.relocationService.Promote(c.Request.Context(), c.Param("nodeID"), userID); err != nil {
		respondNodeError(c, err, "Failed to promote node")
		return
	}
	c.Status(http.StatusNoContent)
}

// demoteNode godoc
// @Summary Demote a node under its preceding sibling
// @Tags nodes
// @Produce  json
// @Param   nodeID path string true "Node ID"
// @Success 204 "Demoted"
// @Failure 409 {object} map[string]string "Node already at max depth"
// @Router /nodes/{nodeID}/demote [post]
func (h *nodeHandler) demoteNode(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	if err := h.relocationService.Demote(c.Request.Context(), c.Param("nodeID"), userID); err != nil {
		respondNodeError(c, err, "Failed to demote node")
		return
	}
	c.Status(http.StatusNoContent)
}

// reorderNodes godoc
// @Summary Apply a visible-list move gesture
// @Description Same-parent moves reorder the sibling group atomically; cross-parent moves are routed to relocation
// @Tags nodes
// @Accept  json
// @Produce  json
// @Param   gesture body dto.ReorderRequest true "Move gesture"
// @Success 200 {object} hierarchy.ReorderPlan
// @Failure 409 {object} map[string]string "Depth exceeded or cyclic move"
// @Router /nodes/reorder [post]
func (h *nodeHandler) reorderNodes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reorder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	ctx := c.Request.Context()

	visible, err := h.treeService.GetVisibleList(ctx, req.Family, req.Category, req.ExpandedIDs)
	if err != nil {
		respondNodeError(c, err, "Failed to build visible list")
		return
	}

	plan, err := h.reorderService.Reorder(ctx, visible, req.SourceIndex, req.DestIndex, userID)
	if err != nil {
		respondNodeError(c, err, "Failed to reorder siblings")
		return
	}

	// The reorder engine never applies a cross-parent move itself; it hands
	// the resolved destination back and the gesture becomes a relocation.
	if plan.CrossParent {
		if err := h.relocationService.Relocate(ctx, plan.SourceNodeID, plan.DestinationParentID, userID); err != nil {
			respondNodeError(c, err, "Failed to relocate node")
			return
		}
	}
	c.JSON(http.StatusOK, plan)
}
