package usecase

import (
	"context"
	"errors"
	"time"

	"skill-summarizer-backend/internal/domain"
	"skill-summarizer-backend/pkg/objectid"

	"github.com/go-playground/validator/v10"
)

type taskUsecase struct {
	taskRepo domain.TaskRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewTaskUsecase(taskRepo domain.TaskRepository, validate *validator.Validate) domain.TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		validate: validate,
		now:      time.Now,
	}
}

func (u *taskUsecase) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	id, err := u.taskRepo.Create(ctx, input.NewTaskDocument(u.now()))
	if err != nil {
		return nil, err
	}

	// Re-read so the response reflects what the store actually holds
	return u.GetTask(ctx, id)
}

func (u *taskUsecase) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return u.taskRepo.Fetch(ctx, domain.MaxListSize)
}

func (u *taskUsecase) GetTask(ctx context.Context, id objectid.ID) (*domain.Task, error) {
	task, err := u.taskRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, notFound("Task", id)
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask merges the non-null fields of patch into the stored task. When
// nothing was modified (empty patch, or values equal to the stored ones) the
// existing task is returned unchanged.
func (u *taskUsecase) UpdateTask(ctx context.Context, id objectid.ID, patch domain.TaskPatch) (*domain.Task, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	if fields := patch.Fields(); len(fields) > 0 {
		modified, err := u.taskRepo.Update(ctx, id, fields)
		if err != nil {
			return nil, err
		}
		if modified == 1 {
			task, err := u.taskRepo.GetByID(ctx, id)
			if err == nil {
				return task, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
		}
	}

	return u.GetTask(ctx, id)
}

func (u *taskUsecase) DeleteTask(ctx context.Context, id objectid.ID) error {
	deleted, err := u.taskRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted != 1 {
		return notFound("Task", id)
	}
	return nil
}
