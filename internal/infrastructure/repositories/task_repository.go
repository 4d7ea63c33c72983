package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// TaskRepositoryImpl implements domain.TaskRepository.
type TaskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) domain.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

// Create implements domain.TaskRepository
func (r *TaskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	if task.Status == "" {
		task.Status = domain.TaskPending
	}
	dbTask := &DBTask{
		Title:       task.Title,
		Description: task.Description,
		GroupID:     task.GroupID,
		StudentID:   task.StudentID,
		Status:      task.Status,
		DueDate:     task.DueDate,
	}
	if err := r.db.WithContext(ctx).Create(dbTask).Error; err != nil {
		return err
	}
	task.ID = dbTask.ID
	return nil
}

// FindByID implements domain.TaskRepository
func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Task, error) {
	var dbTask DBTask
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbTask).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return taskToDomain(&dbTask), nil
}

// List implements domain.TaskRepository
func (r *TaskRepositoryImpl) List(ctx context.Context) ([]domain.Task, error) {
	var dbTasks []DBTask
	if err := r.db.WithContext(ctx).Order("due_date NULLS LAST, id").Find(&dbTasks).Error; err != nil {
		return nil, err
	}
	return tasksToDomain(dbTasks), nil
}

// ListByStudent implements domain.TaskRepository, including tasks assigned
// through the student's groups.
func (r *TaskRepositoryImpl) ListByStudent(ctx context.Context, studentID uint) ([]domain.Task, error) {
	var dbTasks []DBTask
	err := r.db.WithContext(ctx).
		Where("student_id = ? OR group_id IN (?)",
			studentID,
			r.db.Model(&DBGroupStudent{}).Select("group_id").Where("student_id = ?", studentID),
		).
		Order("due_date NULLS LAST, id").
		Find(&dbTasks).Error
	if err != nil {
		return nil, err
	}
	return tasksToDomain(dbTasks), nil
}

// Update implements domain.TaskRepository
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	res := r.db.WithContext(ctx).Model(&DBTask{}).Where("id = ?", task.ID).Updates(map[string]any{
		"title":       task.Title,
		"description": task.Description,
		"group_id":    task.GroupID,
		"student_id":  task.StudentID,
		"status":      task.Status,
		"due_date":    task.DueDate,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete implements domain.TaskRepository (soft delete).
func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBTask{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func taskToDomain(dbTask *DBTask) *domain.Task {
	return &domain.Task{
		ID:          dbTask.ID,
		Title:       dbTask.Title,
		Description: dbTask.Description,
		GroupID:     dbTask.GroupID,
		StudentID:   dbTask.StudentID,
		Status:      dbTask.Status,
		DueDate:     dbTask.DueDate,
		DeletedAt:   deletedAtPtr(dbTask.DeletedAt),
	}
}

func tasksToDomain(dbTasks []DBTask) []domain.Task {
	tasks := make([]domain.Task, 0, len(dbTasks))
	for i := range dbTasks {
		tasks = append(tasks, *taskToDomain(&dbTasks[i]))
	}
	return tasks
}
