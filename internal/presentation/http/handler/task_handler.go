package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// TaskHandler handles calendar task HTTP requests
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// parseDueAt accepts either a full RFC 3339 timestamp or a bare date
func parseDueAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// List handles listing tasks
// @Summary List Tasks
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.TaskFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.taskService.ListTasks(c.Request.Context(), *userID,
		getPagination(req.Page, req.PerPage), IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tasks retrieved successfully", result)
}

// Calendar returns tasks inside a date window
// @Summary Calendar Tasks
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /tasks/calendar [get]
func (h *TaskHandler) Calendar(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CalendarRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	from, err := parseDate(req.From)
	if err != nil {
		response.BadRequest(c, "Invalid from date. Use YYYY-MM-DD")
		return
	}
	to, err := parseDate(req.To)
	if err != nil {
		response.BadRequest(c, "Invalid to date. Use YYYY-MM-DD")
		return
	}
	// Make the window inclusive of the last day
	to = to.Add(24*time.Hour - time.Nanosecond)

	tasks, err := h.taskService.ListCalendar(c.Request.Context(), *userID, from, to, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tasks retrieved successfully", tasks)
}

// Get handles getting a single task
// @Summary Get Task
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.APIResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task retrieved successfully", task)
}

// Create handles creating a task
// @Summary Create Task
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateTaskRequest true "Task data"
// @Success 201 {object} response.APIResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	dueAt, err := parseDueAt(req.DueAt)
	if err != nil {
		response.BadRequest(c, "Invalid due date")
		return
	}

	clientID, err := parseOptionalUUID(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), &service.CreateTaskInput{
		UserID:      *userID,
		ClientID:    clientID,
		Title:       req.Title,
		Description: req.Description,
		DueAt:       dueAt,
		AllDay:      req.AllDay,
		Remind:      req.Remind,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Task created successfully", task)
}

// Update handles updating a task
// @Summary Update Task
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body request.UpdateTaskRequest true "Task data"
// @Success 200 {object} response.APIResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	var req request.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var dueAt *time.Time
	if req.DueAt != nil {
		parsed, err := parseDueAt(*req.DueAt)
		if err != nil {
			response.BadRequest(c, "Invalid due date")
			return
		}
		dueAt = &parsed
	}

	clientID, err := parseOptionalUUID(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), &service.UpdateTaskInput{
		UserID:       *userID,
		ID:           id,
		IsSuperAdmin: IsSuperAdmin(c),
		ClientID:     clientID,
		Title:        req.Title,
		Description:  req.Description,
		DueAt:        dueAt,
		AllDay:       req.AllDay,
		Remind:       req.Remind,
		Done:         req.Done,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Task updated successfully", task)
}

// Delete handles deleting a task
// @Summary Delete Task
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
