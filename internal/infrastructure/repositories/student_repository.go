package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// StudentRepositoryImpl implements domain.StudentRepository.
type StudentRepositoryImpl struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *gorm.DB) domain.StudentRepository {
	return &StudentRepositoryImpl{db: db}
}

// FindByID implements domain.StudentRepository
func (r *StudentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Student, error) {
	var dbStudent DBStudent
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbStudent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return studentToDomain(&dbStudent), nil
}

// FindByUserID implements domain.StudentRepository
func (r *StudentRepositoryImpl) FindByUserID(ctx context.Context, userID uint) (*domain.Student, error) {
	var dbStudent DBStudent
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&dbStudent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return studentToDomain(&dbStudent), nil
}

// ListByCourse implements domain.StudentRepository, joining through the
// enrollment table.
func (r *StudentRepositoryImpl) ListByCourse(ctx context.Context, courseID uint) ([]domain.Student, error) {
	var dbStudents []DBStudent
	err := r.db.WithContext(ctx).
		Joins("JOIN student_courses ON student_courses.student_id = students.id").
		Where("student_courses.course_id = ?", courseID).
		Find(&dbStudents).Error
	if err != nil {
		return nil, err
	}
	return studentsToDomain(dbStudents), nil
}

// List implements domain.StudentRepository
func (r *StudentRepositoryImpl) List(ctx context.Context) ([]domain.Student, error) {
	var dbStudents []DBStudent
	if err := r.db.WithContext(ctx).Order("lastname, name").Find(&dbStudents).Error; err != nil {
		return nil, err
	}
	return studentsToDomain(dbStudents), nil
}

func studentToDomain(dbStudent *DBStudent) *domain.Student {
	return &domain.Student{
		ID:        dbStudent.ID,
		UserID:    dbStudent.UserID,
		Name:      dbStudent.Name,
		Lastname:  dbStudent.Lastname,
		DNI:       dbStudent.DNI,
		Phone:     dbStudent.Phone,
		DeletedAt: deletedAtPtr(dbStudent.DeletedAt),
	}
}

func studentsToDomain(dbStudents []DBStudent) []domain.Student {
	students := make([]domain.Student, 0, len(dbStudents))
	for i := range dbStudents {
		students = append(students, *studentToDomain(&dbStudents[i]))
	}
	return students
}
