package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// CourseRepositoryImpl implements domain.CourseRepository for courses and
// their modules.
type CourseRepositoryImpl struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &CourseRepositoryImpl{db: db}
}

// Create implements domain.CourseRepository
func (r *CourseRepositoryImpl) Create(ctx context.Context, course *domain.Course) error {
	dbCourse := &DBCourse{
		Name:        course.Name,
		Year:        course.Year,
		Description: course.Description,
	}
	if err := r.db.WithContext(ctx).Create(dbCourse).Error; err != nil {
		return err
	}
	course.ID = dbCourse.ID
	return nil
}

// FindByID implements domain.CourseRepository
func (r *CourseRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Course, error) {
	var dbCourse DBCourse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCourse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return courseToDomain(&dbCourse), nil
}

// List implements domain.CourseRepository
func (r *CourseRepositoryImpl) List(ctx context.Context) ([]domain.Course, error) {
	var dbCourses []DBCourse
	if err := r.db.WithContext(ctx).Order("year DESC, name").Find(&dbCourses).Error; err != nil {
		return nil, err
	}
	courses := make([]domain.Course, 0, len(dbCourses))
	for i := range dbCourses {
		courses = append(courses, *courseToDomain(&dbCourses[i]))
	}
	return courses, nil
}

// Update implements domain.CourseRepository
func (r *CourseRepositoryImpl) Update(ctx context.Context, course *domain.Course) error {
	res := r.db.WithContext(ctx).Model(&DBCourse{}).Where("id = ?", course.ID).Updates(map[string]any{
		"name":        course.Name,
		"year":        course.Year,
		"description": course.Description,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// Delete implements domain.CourseRepository (soft delete).
func (r *CourseRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBCourse{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// CreateModule implements domain.CourseRepository
func (r *CourseRepositoryImpl) CreateModule(ctx context.Context, module *domain.CourseModule) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DBCourse{}).Where("id = ?", module.CourseID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrCourseNotFound
	}
	dbModule := &DBCourseModule{
		CourseID:    module.CourseID,
		Name:        module.Name,
		Hours:       module.Hours,
		Description: module.Description,
	}
	if err := r.db.WithContext(ctx).Create(dbModule).Error; err != nil {
		return err
	}
	module.ID = dbModule.ID
	return nil
}

// ListModules implements domain.CourseRepository
func (r *CourseRepositoryImpl) ListModules(ctx context.Context, courseID uint) ([]domain.CourseModule, error) {
	var dbModules []DBCourseModule
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Order("name").Find(&dbModules).Error
	if err != nil {
		return nil, err
	}
	modules := make([]domain.CourseModule, 0, len(dbModules))
	for i := range dbModules {
		modules = append(modules, *moduleToDomain(&dbModules[i]))
	}
	return modules, nil
}

// UpdateModule implements domain.CourseRepository
func (r *CourseRepositoryImpl) UpdateModule(ctx context.Context, module *domain.CourseModule) error {
	res := r.db.WithContext(ctx).Model(&DBCourseModule{}).Where("id = ?", module.ID).Updates(map[string]any{
		"name":        module.Name,
		"hours":       module.Hours,
		"description": module.Description,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrModuleNotFound
	}
	return nil
}

// DeleteModule implements domain.CourseRepository (soft delete).
func (r *CourseRepositoryImpl) DeleteModule(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBCourseModule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrModuleNotFound
	}
	return nil
}

func courseToDomain(dbCourse *DBCourse) *domain.Course {
	return &domain.Course{
		ID:          dbCourse.ID,
		Name:        dbCourse.Name,
		Year:        dbCourse.Year,
		Description: dbCourse.Description,
		DeletedAt:   deletedAtPtr(dbCourse.DeletedAt),
	}
}

func moduleToDomain(dbModule *DBCourseModule) *domain.CourseModule {
	return &domain.CourseModule{
		ID:          dbModule.ID,
		CourseID:    dbModule.CourseID,
		Name:        dbModule.Name,
		Hours:       dbModule.Hours,
		Description: dbModule.Description,
		DeletedAt:   deletedAtPtr(dbModule.DeletedAt),
	}
}
