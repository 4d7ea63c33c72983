package repositories

import (
	"time"

	"gorm.io/gorm"
)

// Database models with GORM tags. Soft delete is the gorm.DeletedAt column:
// marked rows keep their timestamp and are excluded from every query unless
// the repository asks for them explicitly.

type DBUser struct {
	ID           uint           `gorm:"primaryKey"`
	Email        string         `gorm:"uniqueIndex;size:255"`
	PasswordHash string         `gorm:"column:password"`
	RoleID       uint           `gorm:"index"`
	IsActive     bool           `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (DBUser) TableName() string { return "users" }

type DBRole struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64"`
}

func (DBRole) TableName() string { return "roles" }

type DBStudent struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"uniqueIndex"`
	Name      string         `gorm:"size:128"`
	Lastname  string         `gorm:"size:128"`
	DNI       string         `gorm:"column:dni;uniqueIndex;size:32"`
	Phone     string         `gorm:"size:32"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DBStudent) TableName() string { return "students" }

type DBTeacher struct {
	ID         uint           `gorm:"primaryKey"`
	UserID     uint           `gorm:"uniqueIndex"`
	Name       string         `gorm:"size:128"`
	Lastname   string         `gorm:"size:128"`
	DNI        string         `gorm:"column:dni;size:32"`
	Phone      string         `gorm:"size:32"`
	Department string         `gorm:"size:128"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (DBTeacher) TableName() string { return "teachers" }

type DBAdmin struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"uniqueIndex"`
	Name      string         `gorm:"size:128"`
	Lastname  string         `gorm:"size:128"`
	DNI       string         `gorm:"column:dni;size:32"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DBAdmin) TableName() string { return "admins" }

type DBOrganizationContact struct {
	ID             uint           `gorm:"primaryKey"`
	UserID         uint           `gorm:"uniqueIndex"`
	OrganizationID uint           `gorm:"index"`
	Name           string         `gorm:"size:128"`
	Lastname       string         `gorm:"size:128"`
	Position       string         `gorm:"size:128"`
	Phone          string         `gorm:"size:32"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (DBOrganizationContact) TableName() string { return "organization_contacts" }

type DBSession struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"index"`
	IPAddress string `gorm:"size:64"`
	UserAgent string `gorm:"size:512"`
	Status    string `gorm:"index;size:16"`
	DateStart time.Time
	DateEnd   *time.Time
}

func (DBSession) TableName() string { return "sessions" }

type DBLoginAttempt struct {
	ID            uint   `gorm:"primaryKey"`
	Email         string `gorm:"index;size:255"`
	IPAddress     string `gorm:"size:64"`
	UserAgent     string `gorm:"size:512"`
	Status        string `gorm:"size:16"`
	FailureReason string `gorm:"size:128"`
	UserID        *uint  `gorm:"index"`
	CreatedAt     time.Time
}

func (DBLoginAttempt) TableName() string { return "login_attempts" }

type DBCourse struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"size:128"`
	Year        int
	Description string
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DBCourse) TableName() string { return "courses" }

type DBCourseModule struct {
	ID          uint           `gorm:"primaryKey"`
	CourseID    uint           `gorm:"index"`
	Name        string         `gorm:"size:128"`
	Hours       int
	Description string
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DBCourseModule) TableName() string { return "course_modules" }

type DBStudentCourse struct {
	ID         uint `gorm:"primaryKey"`
	StudentID  uint `gorm:"index:idx_student_course,unique"`
	CourseID   uint `gorm:"index:idx_student_course,unique"`
	EnrolledAt time.Time
}

func (DBStudentCourse) TableName() string { return "student_courses" }

type DBOrganization struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:255"`
	CUIT      string         `gorm:"column:cuit;uniqueIndex;size:32"`
	Address   string         `gorm:"size:255"`
	Email     string         `gorm:"size:255"`
	Phone     string         `gorm:"size:32"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DBOrganization) TableName() string { return "organizations" }

type DBGroup struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:128"`
	CourseID  uint           `gorm:"index"`
	TeacherID uint           `gorm:"index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DBGroup) TableName() string { return "groups" }

type DBGroupStudent struct {
	ID        uint `gorm:"primaryKey"`
	GroupID   uint `gorm:"index:idx_group_student,unique"`
	StudentID uint `gorm:"index:idx_group_student,unique"`
}

func (DBGroupStudent) TableName() string { return "group_students" }

type DBTask struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"size:255"`
	Description string
	GroupID     *uint          `gorm:"index"`
	StudentID   *uint          `gorm:"index"`
	Status      string         `gorm:"index;size:16"`
	DueDate     *time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DBTask) TableName() string { return "tasks" }

type DBAttendance struct {
	ID           uint      `gorm:"primaryKey"`
	StudentID    uint      `gorm:"index:idx_attendance_day,unique"`
	Date         time.Time `gorm:"index:idx_attendance_day,unique"`
	Status       string    `gorm:"size:16"`
	Observations string
}

func (DBAttendance) TableName() string { return "attendances" }

type DBLogEntry struct {
	ID             uint           `gorm:"primaryKey"`
	StudentID      uint           `gorm:"index"`
	OrganizationID *uint          `gorm:"index"`
	Date           time.Time      `gorm:"index"`
	Hours          float64
	Activity       string
	Observations   string
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (DBLogEntry) TableName() string { return "log_entries" }

// AllModels lists every table for AutoMigrate at startup.
func AllModels() []any {
	return []any{
		&DBRole{}, &DBUser{}, &DBStudent{}, &DBTeacher{}, &DBAdmin{},
		&DBOrganizationContact{}, &DBSession{}, &DBLoginAttempt{},
		&DBCourse{}, &DBCourseModule{}, &DBStudentCourse{},
		&DBOrganization{}, &DBGroup{}, &DBGroupStudent{}, &DBTask{},
		&DBAttendance{}, &DBLogEntry{},
	}
}

func deletedAtPtr(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}
