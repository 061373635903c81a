package v1

import (
	"net/http"

	"skill-summarizer-backend/internal/delivery/http/response"
	"skill-summarizer-backend/internal/domain"
	"skill-summarizer-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(r gin.IRouter, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := r.Group("/skills")
	{
		skills.POST("", handler.Create)
		skills.GET("", handler.List)
		skills.GET("/:id", handler.Get)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}
}

// CreateSkill godoc
// @Summary      Add new skill
// @Description  Create a skill. category and level are optional.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill  body      domain.CreateSkillInput  true  "Skill JSON"
// @Success      201   {object}  domain.Skill
// @Failure      400   {object}  response.Response
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var req domain.CreateSkillInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	skill, err := h.skillUC.CreateSkill(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Record(c, http.StatusCreated, skill)
}

// ListSkills godoc
// @Summary      List all skills
// @Description  Returns up to 1000 skills in store order
// @Tags         skills
// @Produce      json
// @Success      200  {array}  domain.Skill
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Record(c, http.StatusOK, skills)
}

// GetSkill godoc
// @Summary      Get a single skill
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  domain.Skill
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [get]
func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Skill")
	if !ok {
		return
	}

	skill, err := h.skillUC.GetSkill(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Record(c, http.StatusOK, skill)
}

// UpdateSkill godoc
// @Summary      Update a skill
// @Description  Overwrites only the supplied non-null fields
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Skill ID"
// @Param        skill  body      domain.SkillPatch  true  "Partial skill JSON"
// @Success      200   {object}  domain.Skill
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /skills/{id} [put]
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Skill")
	if !ok {
		return
	}

	var req domain.SkillPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	skill, err := h.skillUC.UpdateSkill(c, id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Record(c, http.StatusOK, skill)
}

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         skills
// @Param        id   path  string  true  "Skill ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Skill")
	if !ok {
		return
	}

	if err := h.skillUC.DeleteSkill(c, id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
