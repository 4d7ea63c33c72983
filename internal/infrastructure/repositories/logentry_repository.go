package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// LogEntryRepositoryImpl implements domain.LogEntryRepository for the
// practice diary.
type LogEntryRepositoryImpl struct {
	db *gorm.DB
}

// NewLogEntryRepository creates a new log entry repository.
func NewLogEntryRepository(db *gorm.DB) domain.LogEntryRepository {
	return &LogEntryRepositoryImpl{db: db}
}

// Create implements domain.LogEntryRepository
func (r *LogEntryRepositoryImpl) Create(ctx context.Context, entry *domain.LogEntry) error {
	dbEntry := &DBLogEntry{
		StudentID:      entry.StudentID,
		OrganizationID: entry.OrganizationID,
		Date:           entry.Date,
		Hours:          entry.Hours,
		Activity:       entry.Activity,
		Observations:   entry.Observations,
	}
	if err := r.db.WithContext(ctx).Create(dbEntry).Error; err != nil {
		return err
	}
	entry.ID = dbEntry.ID
	return nil
}

// FindByID implements domain.LogEntryRepository
func (r *LogEntryRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.LogEntry, error) {
	var dbEntry DBLogEntry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbEntry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLogEntryNotFound
		}
		return nil, err
	}
	return logEntryToDomain(&dbEntry), nil
}

// ListByStudent implements domain.LogEntryRepository
func (r *LogEntryRepositoryImpl) ListByStudent(ctx context.Context, studentID uint) ([]domain.LogEntry, error) {
	var dbEntries []DBLogEntry
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order("date DESC").Find(&dbEntries).Error
	if err != nil {
		return nil, err
	}
	entries := make([]domain.LogEntry, 0, len(dbEntries))
	for i := range dbEntries {
		entries = append(entries, *logEntryToDomain(&dbEntries[i]))
	}
	return entries, nil
}

// Update implements domain.LogEntryRepository
func (r *LogEntryRepositoryImpl) Update(ctx context.Context, entry *domain.LogEntry) error {
	res := r.db.WithContext(ctx).Model(&DBLogEntry{}).Where("id = ?", entry.ID).Updates(map[string]any{
		"organization_id": entry.OrganizationID,
		"date":            entry.Date,
		"hours":           entry.Hours,
		"activity":        entry.Activity,
		"observations":    entry.Observations,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrLogEntryNotFound
	}
	return nil
}

// Delete implements domain.LogEntryRepository (soft delete).
func (r *LogEntryRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBLogEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrLogEntryNotFound
	}
	return nil
}

func logEntryToDomain(dbEntry *DBLogEntry) *domain.LogEntry {
	return &domain.LogEntry{
		ID:             dbEntry.ID,
		StudentID:      dbEntry.StudentID,
		OrganizationID: dbEntry.OrganizationID,
		Date:           dbEntry.Date,
		Hours:          dbEntry.Hours,
		Activity:       dbEntry.Activity,
		Observations:   dbEntry.Observations,
		DeletedAt:      deletedAtPtr(dbEntry.DeletedAt),
	}
}
