package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// AttendanceRepositoryImpl implements domain.AttendanceRepository. One row
// per student per date, enforced by a unique index.
type AttendanceRepositoryImpl struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *gorm.DB) domain.AttendanceRepository {
	return &AttendanceRepositoryImpl{db: db}
}

// Create implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) Create(ctx context.Context, att *domain.Attendance) error {
	dbAtt := &DBAttendance{
		StudentID:    att.StudentID,
		Date:         att.Date,
		Status:       att.Status,
		Observations: att.Observations,
	}
	if err := r.db.WithContext(ctx).Create(dbAtt).Error; err != nil {
		return err
	}
	att.ID = dbAtt.ID
	return nil
}

// FindByID implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Attendance, error) {
	var dbAtt DBAttendance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAtt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, err
	}
	return attendanceToDomain(&dbAtt), nil
}

// ListByStudent implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) ListByStudent(ctx context.Context, studentID uint) ([]domain.Attendance, error) {
	var dbAtts []DBAttendance
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("date DESC").Find(&dbAtts).Error
	if err != nil {
		return nil, err
	}
	return attendancesToDomain(dbAtts), nil
}

// ListByDate implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]domain.Attendance, error) {
	var dbAtts []DBAttendance
	err := r.db.WithContext(ctx).Where("date = ?", date).Order("student_id").Find(&dbAtts).Error
	if err != nil {
		return nil, err
	}
	return attendancesToDomain(dbAtts), nil
}

// Update implements domain.AttendanceRepository
func (r *AttendanceRepositoryImpl) Update(ctx context.Context, att *domain.Attendance) error {
	res := r.db.WithContext(ctx).Model(&DBAttendance{}).Where("id = ?", att.ID).Updates(map[string]any{
		"status":       att.Status,
		"observations": att.Observations,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAttendanceNotFound
	}
	return nil
}

func attendanceToDomain(dbAtt *DBAttendance) *domain.Attendance {
	return &domain.Attendance{
		ID:           dbAtt.ID,
		StudentID:    dbAtt.StudentID,
		Date:         dbAtt.Date,
		Status:       dbAtt.Status,
		Observations: dbAtt.Observations,
	}
}

func attendancesToDomain(dbAtts []DBAttendance) []domain.Attendance {
	atts := make([]domain.Attendance, 0, len(dbAtts))
	for i := range dbAtts {
		atts = append(atts, *attendanceToDomain(&dbAtts[i]))
	}
	return atts
}
