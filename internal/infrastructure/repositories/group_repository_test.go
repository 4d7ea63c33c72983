package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

func TestGroupRepositoryImpl_Membership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	group := &domain.Group{Name: "Grupo A", CourseID: 1, TeacherID: 1}
	if err := repo.Create(ctx, group); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.AddStudent(ctx, group.ID, 10); err != nil {
		t.Fatalf("add student failed: %v", err)
	}
	// Adding the same student twice is a no-op.
	if err := repo.AddStudent(ctx, group.ID, 10); err != nil {
		t.Fatalf("repeated add failed: %v", err)
	}
	if err := repo.AddStudent(ctx, group.ID, 11); err != nil {
		t.Fatalf("add second student failed: %v", err)
	}

	found, err := repo.FindByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found.StudentIDs) != 2 {
		t.Fatalf("expected 2 members, got %d", len(found.StudentIDs))
	}

	if err := repo.RemoveStudent(ctx, group.ID, 10); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	found, err = repo.FindByID(ctx, group.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found.StudentIDs) != 1 || found.StudentIDs[0] != 11 {
		t.Errorf("unexpected members after removal: %v", found.StudentIDs)
	}
}

func TestGroupRepositoryImpl_AddStudentToUnknownGroup(t *testing.T) {
	repo := NewGroupRepository(setupTestDB(t))

	if err := repo.AddStudent(context.Background(), 999, 10); !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestTaskRepositoryImpl_ListByStudent(t *testing.T) {
	db := setupTestDB(t)
	groupRepo := NewGroupRepository(db)
	taskRepo := NewTaskRepository(db)
	ctx := context.Background()

	group := &domain.Group{Name: "Grupo A", CourseID: 1, TeacherID: 1}
	if err := groupRepo.Create(ctx, group); err != nil {
		t.Fatalf("create group failed: %v", err)
	}
	if err := groupRepo.AddStudent(ctx, group.ID, 10); err != nil {
		t.Fatalf("add student failed: %v", err)
	}

	studentID := uint(10)
	direct := &domain.Task{Title: "Informe individual", StudentID: &studentID}
	if err := taskRepo.Create(ctx, direct); err != nil {
		t.Fatalf("create direct task failed: %v", err)
	}
	viaGroup := &domain.Task{Title: "Proyecto grupal", GroupID: &group.ID}
	if err := taskRepo.Create(ctx, viaGroup); err != nil {
		t.Fatalf("create group task failed: %v", err)
	}
	other := uint(99)
	unrelated := &domain.Task{Title: "Ajena", StudentID: &other}
	if err := taskRepo.Create(ctx, unrelated); err != nil {
		t.Fatalf("create unrelated task failed: %v", err)
	}

	tasks, err := taskRepo.ListByStudent(ctx, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected direct plus group task, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Title == "Ajena" {
			t.Error("unrelated task listed")
		}
		if task.Status != domain.TaskPending {
			t.Errorf("expected default pending status, got %s", task.Status)
		}
	}
}
