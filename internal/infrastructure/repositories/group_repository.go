package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// GroupRepositoryImpl implements domain.GroupRepository.
type GroupRepositoryImpl struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository.
func NewGroupRepository(db *gorm.DB) domain.GroupRepository {
	return &GroupRepositoryImpl{db: db}
}

// Create implements domain.GroupRepository
func (r *GroupRepositoryImpl) Create(ctx context.Context, group *domain.Group) error {
	dbGroup := &DBGroup{
		Name:      group.Name,
		CourseID:  group.CourseID,
		TeacherID: group.TeacherID,
	}
	if err := r.db.WithContext(ctx).Create(dbGroup).Error; err != nil {
		return err
	}
	group.ID = dbGroup.ID
	return nil
}

// FindByID implements domain.GroupRepository, loading member student IDs.
func (r *GroupRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Group, error) {
	var dbGroup DBGroup
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbGroup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, err
	}

	var studentIDs []uint
	err = r.db.WithContext(ctx).Model(&DBGroupStudent{}).
		Where("group_id = ?", id).
		Pluck("student_id", &studentIDs).Error
	if err != nil {
		return nil, err
	}

	group := groupToDomain(&dbGroup)
	group.StudentIDs = studentIDs
	return group, nil
}

// List implements domain.GroupRepository
func (r *GroupRepositoryImpl) List(ctx context.Context) ([]domain.Group, error) {
	var dbGroups []DBGroup
	if err := r.db.WithContext(ctx).Order("name").Find(&dbGroups).Error; err != nil {
		return nil, err
	}
	groups := make([]domain.Group, 0, len(dbGroups))
	for i := range dbGroups {
		groups = append(groups, *groupToDomain(&dbGroups[i]))
	}
	return groups, nil
}

// Update implements domain.GroupRepository
func (r *GroupRepositoryImpl) Update(ctx context.Context, group *domain.Group) error {
	res := r.db.WithContext(ctx).Model(&DBGroup{}).Where("id = ?", group.ID).Updates(map[string]any{
		"name":       group.Name,
		"course_id":  group.CourseID,
		"teacher_id": group.TeacherID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

// Delete implements domain.GroupRepository (soft delete; memberships stay
// in place for a possible restore).
func (r *GroupRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBGroup{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}

// AddStudent implements domain.GroupRepository. Adding twice is a no-op.
func (r *GroupRepositoryImpl) AddStudent(ctx context.Context, groupID, studentID uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DBGroup{}).Where("id = ?", groupID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrGroupNotFound
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&DBGroupStudent{GroupID: groupID, StudentID: studentID}).Error
}

// RemoveStudent implements domain.GroupRepository.
func (r *GroupRepositoryImpl) RemoveStudent(ctx context.Context, groupID, studentID uint) error {
	return r.db.WithContext(ctx).
		Where("group_id = ? AND student_id = ?", groupID, studentID).
		Delete(&DBGroupStudent{}).Error
}

func groupToDomain(dbGroup *DBGroup) *domain.Group {
	return &domain.Group{
		ID:        dbGroup.ID,
		Name:      dbGroup.Name,
		CourseID:  dbGroup.CourseID,
		TeacherID: dbGroup.TeacherID,
		DeletedAt: deletedAtPtr(dbGroup.DeletedAt),
	}
}
