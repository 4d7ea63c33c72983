package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations. Soft-deleted rows are
// excluded from every lookup by default.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	// FindActiveByEmail returns the user only when it is active and not
	// soft-deleted; otherwise ErrUserNotFound.
	FindActiveByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// RoleRepository resolves the fixed role lookup set.
type RoleRepository interface {
	FindByName(ctx context.Context, name RoleName) (*Role, error)
	FindByID(ctx context.Context, id uint) (*Role, error)
	// EnsureSeeded inserts any missing roles from AllRoles.
	EnsureSeeded(ctx context.Context) error
}

// AccountRepository owns the multi-row account workflows. CreateWithProfile
// inserts the User, its role-specific profile and, for students, the course
// enrollment inside one transaction; on any failure nothing is written.
type AccountRepository interface {
	CreateWithProfile(ctx context.Context, user *User, payload ProfilePayload) error
	// Deactivate soft-deletes the user and its profile in one transaction.
	Deactivate(ctx context.Context, userID uint) error
	// Restore clears the soft delete on the user and its profile in one
	// transaction and reactivates the account.
	Restore(ctx context.Context, userID uint) error
}

// SessionRepository defines session data access operations. Lookups by ID
// reflect closes immediately even when a cache sits in front of the table.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	CountActive(ctx context.Context, userID uint) (int64, error)
	ListActive(ctx context.Context, userID uint) ([]Session, error)
	Close(ctx context.Context, sessionID string) error
	// CloseAllForUser closes every active session in a single statement
	// and reports how many rows it affected.
	CloseAllForUser(ctx context.Context, userID uint) (int64, error)
}

// LoginAttemptRepository appends audit rows; attempts are never updated.
type LoginAttemptRepository interface {
	Record(ctx context.Context, attempt *LoginAttempt) error
}

// StudentRepository reads student profiles for listing endpoints.
type StudentRepository interface {
	FindByID(ctx context.Context, id uint) (*Student, error)
	FindByUserID(ctx context.Context, userID uint) (*Student, error)
	ListByCourse(ctx context.Context, courseID uint) ([]Student, error)
	List(ctx context.Context) ([]Student, error)
}

// CourseRepository covers courses and their modules.
type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	FindByID(ctx context.Context, id uint) (*Course, error)
	List(ctx context.Context) ([]Course, error)
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id uint) error
	CreateModule(ctx context.Context, module *CourseModule) error
	ListModules(ctx context.Context, courseID uint) ([]CourseModule, error)
	UpdateModule(ctx context.Context, module *CourseModule) error
	DeleteModule(ctx context.Context, id uint) error
}

// OrganizationRepository covers companies and their contact listings.
type OrganizationRepository interface {
	Create(ctx context.Context, org *Organization) error
	FindByID(ctx context.Context, id uint) (*Organization, error)
	List(ctx context.Context) ([]Organization, error)
	Update(ctx context.Context, org *Organization) error
	Delete(ctx context.Context, id uint) error
	ListContacts(ctx context.Context, orgID uint) ([]OrganizationContact, error)
}

// GroupRepository covers working groups and membership.
type GroupRepository interface {
	Create(ctx context.Context, group *Group) error
	FindByID(ctx context.Context, id uint) (*Group, error)
	List(ctx context.Context) ([]Group, error)
	Update(ctx context.Context, group *Group) error
	Delete(ctx context.Context, id uint) error
	AddStudent(ctx context.Context, groupID, studentID uint) error
	RemoveStudent(ctx context.Context, groupID, studentID uint) error
}

// TaskRepository covers assigned tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id uint) (*Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByStudent(ctx context.Context, studentID uint) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id uint) error
}

// AttendanceRepository covers per-day presence records.
type AttendanceRepository interface {
	Create(ctx context.Context, att *Attendance) error
	FindByID(ctx context.Context, id uint) (*Attendance, error)
	ListByStudent(ctx context.Context, studentID uint) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	Update(ctx context.Context, att *Attendance) error
}

// LogEntryRepository covers the practice diary.
type LogEntryRepository interface {
	Create(ctx context.Context, entry *LogEntry) error
	FindByID(ctx context.Context, id uint) (*LogEntry, error)
	ListByStudent(ctx context.Context, studentID uint) ([]LogEntry, error)
	Update(ctx context.Context, entry *LogEntry) error
	Delete(ctx context.Context, id uint) error
}

// ProvisioningService creates accounts: base user plus role-specific
// profile, atomically.
type ProvisioningService interface {
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*User, error)
}

// CreateAccountRequest carries the credentials and the role-tagged profile
// payload. When Password is empty the payload's national ID is hashed as the
// initial password.
type CreateAccountRequest struct {
	Email    string
	Password string
	Payload  ProfilePayload
}

// AuthService defines authentication and session management.
type AuthService interface {
	Login(ctx context.Context, email, password string, client ClientInfo) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	ActiveSessions(ctx context.Context, userID uint) ([]Session, error)
	CloseAllSessions(ctx context.Context, userID uint) (int64, error)
	CloseSessionsByEmail(ctx context.Context, email string) (int64, error)
}

// AccountService defines the account lifecycle beyond creation.
type AccountService interface {
	Deactivate(ctx context.Context, userID uint) error
	Restore(ctx context.Context, userID uint) error
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines bearer token operations.
type TokenService interface {
	Generate(user *User, role *Role, sessionID string) (string, error)
	Validate(token string) (*TokenClaims, error)
}
