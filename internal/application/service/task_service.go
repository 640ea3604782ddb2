package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
	"github.com/serviflow/serviflow-api/pkg/email"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// TaskService handles calendar tasks and reminders
type TaskService struct {
	taskRepo     repository.TaskRepository
	userRepo     repository.UserRepository
	prefsRepo    repository.PreferencesRepository
	emailService *email.EmailService
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	prefsRepo repository.PreferencesRepository,
	emailService *email.EmailService,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		prefsRepo:    prefsRepo,
		emailService: emailService,
	}
}

// CreateTaskInput represents the create task input
type CreateTaskInput struct {
	UserID      uuid.UUID
	ClientID    *uuid.UUID
	Title       string
	Description *string
	DueAt       time.Time
	AllDay      bool
	Remind      bool
}

// CreateTask creates a new calendar task
func (s *TaskService) CreateTask(ctx context.Context, input *CreateTaskInput) (*entity.Task, error) {
	task := &entity.Task{
		UserID:      input.UserID,
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		AllDay:      input.AllDay,
		Remind:      input.Remind,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}
	return task, nil
}

// ListTasks lists tasks. If isSuperAdmin is true, returns all tasks.
func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, isSuperAdmin bool) (*pagination.PaginatedResult[entity.Task], error) {
	tasks, total, err := s.taskRepo.List(ctx, userID, params, isSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(tasks, pag), nil
}

// ListCalendar returns tasks due within a date range, for the calendar view.
func (s *TaskService) ListCalendar(ctx context.Context, userID uuid.UUID, from, to time.Time, isSuperAdmin bool) ([]entity.Task, error) {
	if to.Before(from) {
		return nil, apperror.NewValidationError("the range end must not precede its start")
	}
	return s.taskRepo.ListInRange(ctx, userID, from, to, isSuperAdmin)
}

// UpdateTaskInput represents the update task input
type UpdateTaskInput struct {
	UserID       uuid.UUID
	ID           uuid.UUID
	IsSuperAdmin bool
	ClientID     *uuid.UUID
	Title        *string
	Description  *string
	DueAt        *time.Time
	AllDay       *bool
	Remind       *bool
	Done         *bool
}

// UpdateTask updates an existing task
func (s *TaskService) UpdateTask(ctx context.Context, input *UpdateTaskInput) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NewNotFoundError("Task")
	}
	if !input.IsSuperAdmin && task.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.ClientID != nil {
		task.ClientID = input.ClientID
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.DueAt != nil {
		task.DueAt = *input.DueAt
	}
	if input.AllDay != nil {
		task.AllDay = *input.AllDay
	}
	if input.Remind != nil {
		task.Remind = *input.Remind
	}
	if input.Done != nil {
		task.Done = *input.Done
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask soft-deletes a task
func (s *TaskService) DeleteTask(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return apperror.NewNotFoundError("Task")
	}
	if !isSuperAdmin && task.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.taskRepo.Delete(ctx, id)
}

// SendDueReminders emails reminders for tasks due within the window to
// owners who have reminders enabled. Intended to run periodically.
func (s *TaskService) SendDueReminders(ctx context.Context, window time.Duration) (int, error) {
	now := time.Now()
	tasks, err := s.taskRepo.ListInRange(ctx, uuid.Nil, now, now.Add(window), true)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range tasks {
		task := &tasks[i]
		if !task.Remind || task.Done {
			continue
		}

		prefs, err := s.prefsRepo.GetByUserID(ctx, task.UserID)
		if err != nil {
			return sent, err
		}
		if prefs != nil && !prefs.TaskReminders {
			continue
		}

		user, err := s.userRepo.GetByID(ctx, task.UserID)
		if err != nil {
			return sent, err
		}
		if user == nil {
			continue
		}

		if err := s.emailService.SendTaskReminder(user.Email, task.Title, task.DueAt.Format("2006-01-02 15:04")); err != nil {
			continue
		}
		sent++
	}
	return sent, nil
}
