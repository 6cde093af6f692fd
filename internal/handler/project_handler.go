package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"callsheet/internal/model"
	"callsheet/internal/service"
	"callsheet/internal/store"
)

type ProjectHandler struct {
	projects *service.ProjectService
}

func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// actorFrom identifies the authenticated user for completion stamps.
func actorFrom(c *gin.Context) string {
	return fmt.Sprintf("user:%d", c.GetInt("user_id"))
}

func respondMutationErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, service.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.projects.CreateProject(c.Request.Context(), c.GetInt("user_id"), req.Title, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": h.projects.ListProjects(c.GetInt("user_id"))})
}

// GetProject handles GET /projects/:id. Ownership is checked by the
// router's RequireProjectOwner middleware.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.projects.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projects.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateBudget handles PUT /projects/:id/budget
func (h *ProjectHandler) UpdateBudget(c *gin.Context) {
	var req struct {
		TotalBudget float64 `json:"total_budget"`
		Currency    string  `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.projects.SetTotalBudget(c.Request.Context(), c.Param("id"), req.TotalBudget, req.Currency); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Expenses ----------------------------------------------------------------

func (h *ProjectHandler) AddExpense(c *gin.Context) {
	var e model.Expense
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.projects.AddExpense(c.Request.Context(), c.Param("id"), e)
	if err != nil {
		respondMutationErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdateExpense(c *gin.Context) {
	var e model.Expense
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	e.ID = c.Param("expenseID")
	if err := h.projects.UpdateExpense(c.Request.Context(), c.Param("id"), e); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteExpense(c *gin.Context) {
	if err := h.projects.DeleteExpense(c.Request.Context(), c.Param("id"), c.Param("expenseID")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Shooting days -----------------------------------------------------------

func (h *ProjectHandler) AddShootingDay(c *gin.Context) {
	var d model.ShootingDay
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.projects.AddShootingDay(c.Request.Context(), c.Param("id"), d)
	if err != nil {
		respondMutationErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdateShootingDay(c *gin.Context) {
	var d model.ShootingDay
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	d.ID = c.Param("dayID")
	if err := h.projects.UpdateShootingDay(c.Request.Context(), c.Param("id"), d); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteShootingDay(c *gin.Context) {
	if err := h.projects.DeleteShootingDay(c.Request.Context(), c.Param("id"), c.Param("dayID")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Phases and tasks --------------------------------------------------------

func (h *ProjectHandler) AddPhase(c *gin.Context) {
	var ph model.Phase
	if err := c.ShouldBindJSON(&ph); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.projects.AddPhase(c.Request.Context(), c.Param("id"), ph)
	if err != nil {
		respondMutationErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdatePhase(c *gin.Context) {
	var ph model.Phase
	if err := c.ShouldBindJSON(&ph); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	ph.ID = c.Param("phaseID")
	if err := h.projects.UpdatePhase(c.Request.Context(), c.Param("id"), ph); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeletePhase(c *gin.Context) {
	if err := h.projects.DeletePhase(c.Request.Context(), c.Param("id"), c.Param("phaseID")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) AddTask(c *gin.Context) {
	var t model.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.projects.AddTask(c.Request.Context(), c.Param("id"), c.Param("phaseID"), t)
	if err != nil {
		respondMutationErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdateTask(c *gin.Context) {
	var t model.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t.ID = c.Param("taskID")
	if err := h.projects.UpdateTask(c.Request.Context(), c.Param("id"), c.Param("phaseID"), actorFrom(c), t); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteTask(c *gin.Context) {
	if err := h.projects.DeleteTask(c.Request.Context(), c.Param("id"), c.Param("phaseID"), c.Param("taskID")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Milestones --------------------------------------------------------------

func (h *ProjectHandler) AddMilestone(c *gin.Context) {
	var m model.Milestone
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.projects.AddMilestone(c.Request.Context(), c.Param("id"), m)
	if err != nil {
		respondMutationErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdateMilestone(c *gin.Context) {
	var m model.Milestone
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m.ID = c.Param("milestoneID")
	if err := h.projects.UpdateMilestone(c.Request.Context(), c.Param("id"), actorFrom(c), m); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteMilestone(c *gin.Context) {
	if err := h.projects.DeleteMilestone(c.Request.Context(), c.Param("id"), c.Param("milestoneID")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMilestones handles GET /projects/:id/milestones, resolving assignee
// ids to display names.
func (h *ProjectHandler) ListMilestones(c *gin.Context) {
	p, err := h.projects.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	type milestoneView struct {
		model.Milestone
		AssigneeNames []string `json:"assignee_names"`
	}
	out := make([]milestoneView, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		v := milestoneView{Milestone: m}
		for _, id := range m.AssigneeIDs {
			v.AssigneeNames = append(v.AssigneeNames, service.ResolveAssignee(p, id))
		}
		out = append(out, v)
	}

	c.JSON(http.StatusOK, gin.H{"milestones": out})
}

// Team --------------------------------------------------------------------

func (h *ProjectHandler) AddTeamMember(c *gin.Context) {
	var m model.TeamMember
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.projects.AddTeamMember(c.Request.Context(), c.Param("id"), m)
	if err != nil {
		respondMutationErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdateTeamMember(c *gin.Context) {
	var m model.TeamMember
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m.ID = c.Param("memberID")
	if err := h.projects.UpdateTeamMember(c.Request.Context(), c.Param("id"), m); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteTeamMember(c *gin.Context) {
	if err := h.projects.DeleteTeamMember(c.Request.Context(), c.Param("id"), c.Param("memberID")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Equipment ---------------------------------------------------------------

func (h *ProjectHandler) AddEquipmentItem(c *gin.Context) {
	var it model.EquipmentItem
	if err := c.ShouldBindJSON(&it); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.projects.AddEquipmentItem(c.Request.Context(), c.Param("id"), it)
	if err != nil {
		respondMutationErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdateEquipmentItem(c *gin.Context) {
	var it model.EquipmentItem
	if err := c.ShouldBindJSON(&it); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	it.ID = c.Param("itemID")
	if err := h.projects.UpdateEquipmentItem(c.Request.Context(), c.Param("id"), it); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteEquipmentItem(c *gin.Context) {
	if err := h.projects.DeleteEquipmentItem(c.Request.Context(), c.Param("id"), c.Param("itemID")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Legal checklist ---------------------------------------------------------

func (h *ProjectHandler) AddChecklistItem(c *gin.Context) {
	var it model.ChecklistItem
	if err := c.ShouldBindJSON(&it); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.projects.AddChecklistItem(c.Request.Context(), c.Param("id"), it)
	if err != nil {
		respondMutationErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdateChecklistItem(c *gin.Context) {
	var it model.ChecklistItem
	if err := c.ShouldBindJSON(&it); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	it.ID = c.Param("itemID")
	if err := h.projects.UpdateChecklistItem(c.Request.Context(), c.Param("id"), actorFrom(c), it); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteChecklistItem(c *gin.Context) {
	if err := h.projects.DeleteChecklistItem(c.Request.Context(), c.Param("id"), c.Param("itemID")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Documents ---------------------------------------------------------------

func (h *ProjectHandler) AddDocument(c *gin.Context) {
	var d model.Document
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.projects.AddDocument(c.Request.Context(), c.Param("id"), d)
	if err != nil {
		respondMutationErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdateDocument(c *gin.Context) {
	var d model.Document
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	d.ID = c.Param("documentID")
	if err := h.projects.UpdateDocument(c.Request.Context(), c.Param("id"), d); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteDocument(c *gin.Context) {
	if err := h.projects.DeleteDocument(c.Request.Context(), c.Param("id"), c.Param("documentID")); err != nil {
		respondMutationErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceSection handles PUT /projects/:id/sections/:section for the
// secondary collections edited as whole forms.
func (h *ProjectHandler) ReplaceSection(c *gin.Context) {
	var raw json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.projects.ReplaceSection(c.Request.Context(), c.Param("id"), c.Param("section"), raw); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
