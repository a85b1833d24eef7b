package handlers

import (
	"net/http"
	"strings"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portssvc "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// treeHandler serves the nested and flattened projections of a hierarchy.
type treeHandler struct {
	treeService portssvc.TreeSvcFacade
}

func newTreeHandler(ts portssvc.TreeSvcFacade) *treeHandler {
	return &treeHandler{treeService: ts}
}

// registerTreeRoutes registers routes related to tree projections.
func registerTreeRoutes(rg *gin.RouterGroup, treeService portssvc.TreeSvcFacade) {
	h := newTreeHandler(treeService)

	tree := rg.Group("/tree")
	{
		tree.GET("", h.getTree)
		tree.GET("/visible", h.getVisibleList)
	}
}

// getTree godoc
// @Summary Get the nested hierarchy of a family and category
// @Tags tree
// @Produce  json
// @Param   family query string true "Node family (SUBJECT or ORGANIZATION)"
// @Param   category query string true "Category"
// @Param   search query string false "Prune branches without a code/name match"
// @Success 200 {array} hierarchy.TreeNode
// @Router /tree [get]
func (h *treeHandler) getTree(c *gin.Context) {
	family := domain.NodeFamily(c.DefaultQuery("family", string(domain.FamilySubject)))
	category := domain.Category(c.Query("category"))

	tree, err := h.treeService.GetTree(c.Request.Context(), family, category, c.Query("search"))
	if err != nil {
		respondNodeError(c, err, "Failed to build tree")
		return
	}
	c.JSON(http.StatusOK, tree)
}

// getVisibleList godoc
// @Summary Get the expansion-aware flattened hierarchy
// @Description Depth-first flattening with depth and connector annotations; expanded is a comma-separated node ID list
// @Tags tree
// @Produce  json
// @Param   family query string true "Node family (SUBJECT or ORGANIZATION)"
// @Param   category query string true "Category"
// @Param   expanded query string false "Comma-separated expanded node IDs"
// @Success 200 {array} hierarchy.VisibleNode
// @Router /tree/visible [get]
func (h *treeHandler) getVisibleList(c *gin.Context) {
	family := domain.NodeFamily(c.DefaultQuery("family", string(domain.FamilySubject)))
	category := domain.Category(c.Query("category"))

	var expandedIDs []string
	if raw := c.Query("expanded"); raw != "" {
		expandedIDs = strings.Split(raw, ",")
	}

	visible, err := h.treeService.GetVisibleList(c.Request.Context(), family, category, expandedIDs)
	if err != nil {
		respondNodeError(c, err, "Failed to build visible list")
		return
	}
	c.JSON(http.StatusOK, visible)
}
