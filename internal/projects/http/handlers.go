package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/stackdeck-backend/internal/projects/domain"
)

type writeFileReq struct {
	Content *string `json:"content"`
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.projects.List()
	if err != nil {
		h.writeError(c, err)
		return
	}

	statuses, err := h.lifecycle.Statuses(c.Request.Context(), projects)
	if err != nil {
		h.writeError(c, err)
		return
	}

	items := make([]domain.ProjectStatus, len(projects))
	for i, p := range projects {
		items[i] = domain.ProjectStatus{Name: p.Name, Status: statuses[i]}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.projects.Get(c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	if file, ok := c.GetQuery("file"); ok {
		content, err := h.files.ReadFile(p, file)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, domain.FileContent{Name: file, Content: content})
		return
	}

	h.writeDetails(c, p)
}

func (h *Handler) writeFile(c *gin.Context) {
	file, ok := c.GetQuery("file")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file query parameter"})
		return
	}

	var req writeFileReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.projects.Get(c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	content, err := h.files.WriteFile(p, file, *req.Content)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.FileContent{Name: file, Content: content})
}

func (h *Handler) delete(c *gin.Context) {
	p, err := h.projects.Get(c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	if file, ok := c.GetQuery("file"); ok {
		content, err := h.files.DeleteFile(p, file)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, domain.FileContent{Name: file, Content: content})
		return
	}

	if err := h.projects.Delete(p); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "name": p.Name})
}

func (h *Handler) create(c *gin.Context) {
	p, err := h.projects.Create(c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.writeDetails(c, p)
}

func (h *Handler) stop(c *gin.Context) {
	h.transition(c, h.lifecycle.Stop)
}

func (h *Handler) start(c *gin.Context) {
	h.transition(c, h.lifecycle.Start)
}

func (h *Handler) restart(c *gin.Context) {
	h.transition(c, h.lifecycle.Restart)
}

func (h *Handler) update(c *gin.Context) {
	h.transition(c, h.lifecycle.Update)
}

// transition resolves the project, applies op and answers with the fresh
// details.
func (h *Handler) transition(c *gin.Context, op func(context.Context, domain.ProjectInfo) error) {
	p, err := h.projects.Get(c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := op(c.Request.Context(), p); err != nil {
		h.writeError(c, err)
		return
	}
	h.writeDetails(c, p)
}

func (h *Handler) writeDetails(c *gin.Context, p domain.ProjectInfo) {
	status, err := h.lifecycle.Status(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	files, err := h.files.Files(p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.ProjectDetails{Name: p.Name, Status: status, Files: files})
}
