package v1

import (
	"net/http"

	"skill-summarizer-backend/internal/delivery/http/response"
	"skill-summarizer-backend/internal/domain"
	"skill-summarizer-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskUC domain.TaskUsecase
}

func NewTaskHandler(r gin.IRouter, taskUC domain.TaskUsecase) {
	handler := &TaskHandler{taskUC: taskUC}

	tasks := r.Group("/tasks")
	{
		tasks.POST("", handler.Create)
		tasks.GET("", handler.List)
		tasks.GET("/:id", handler.Get)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}

// CreateTask godoc
// @Summary      Add new task
// @Description  Create a task. date defaults to now, skill lists to empty.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task  body      domain.CreateTaskInput  true  "Task JSON"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  response.Response
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req domain.CreateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	task, err := h.taskUC.CreateTask(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Record(c, http.StatusCreated, task)
}

// ListTasks godoc
// @Summary      List all tasks
// @Description  Returns up to 1000 tasks in store order
// @Tags         tasks
// @Produce      json
// @Success      200  {array}  domain.Task
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskUC.ListTasks(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Record(c, http.StatusOK, tasks)
}

// GetTask godoc
// @Summary      Get a single task
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  domain.Task
// @Failure      404  {object}  response.Response
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "Task")
	if !ok {
		return
	}

	task, err := h.taskUC.GetTask(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Record(c, http.StatusOK, task)
}

// UpdateTask godoc
// @Summary      Update a task
// @Description  Overwrites only the supplied non-null fields
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Task ID"
// @Param        task  body      domain.TaskPatch  true  "Partial task JSON"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Task")
	if !ok {
		return
	}

	var req domain.TaskPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	task, err := h.taskUC.UpdateTask(c, id, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Record(c, http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Param        id   path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Task")
	if !ok {
		return
	}

	if err := h.taskUC.DeleteTask(c, id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
