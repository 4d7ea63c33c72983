package domain

import "time"

// User is the base account record. Every role-specific profile references
// exactly one User; the pair is created and soft-deleted together.
type User struct {
	ID           uint
	Email        string
	PasswordHash string
	RoleID       uint
	IsActive     bool
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role is a fixed lookup row (Administrador, Profesor, Estudiante, Tutor,
// Tutor Empresa).
type Role struct {
	ID   uint
	Name RoleName
}

// Student profile, 1:1 with a User whose role is Estudiante.
type Student struct {
	ID        uint
	UserID    uint
	Name      string
	Lastname  string
	DNI       string
	Phone     string
	DeletedAt *time.Time
}

// Teacher profile, 1:1 with a User whose role is Profesor or Tutor.
type Teacher struct {
	ID         uint
	UserID     uint
	Name       string
	Lastname   string
	DNI        string
	Phone      string
	Department string
	DeletedAt  *time.Time
}

// Admin profile, 1:1 with a User whose role is Administrador.
type Admin struct {
	ID        uint
	UserID    uint
	Name      string
	Lastname  string
	DNI       string
	DeletedAt *time.Time
}

// OrganizationContact profile, 1:1 with a User whose role is Tutor Empresa.
type OrganizationContact struct {
	ID             uint
	UserID         uint
	OrganizationID uint
	Name           string
	Lastname       string
	Position       string
	Phone          string
	DeletedAt      *time.Time
}

// Session status values. A session is created active and closing is
// terminal; a new login always creates a new row.
const (
	SessionActive = "active"
	SessionClosed = "closed"
)

// Session represents one login. A user may not hold more than the configured
// maximum of simultaneously active sessions.
type Session struct {
	ID        string
	UserID    uint
	IPAddress string
	UserAgent string
	Status    string
	DateStart time.Time
	DateEnd   *time.Time
}

// LoginAttempt outcome values.
const (
	AttemptSuccess = "success"
	AttemptFailed  = "failed"
)

// LoginAttempt is an append-only audit record of every authentication
// attempt. Rows are never mutated or deleted.
type LoginAttempt struct {
	ID            uint
	Email         string
	IPAddress     string
	UserAgent     string
	Status        string
	FailureReason string
	UserID        *uint
	CreatedAt     time.Time
}

// ClientInfo carries the request metadata recorded on sessions and
// login attempts.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// AuthResult is the outcome of a successful login.
type AuthResult struct {
	User      *User
	Role      *Role
	Token     string
	SessionID string
	ExpiresIn int64
}

// TokenClaims is the payload embedded in issued bearer tokens. The session
// ID is re-checked against storage on every authenticated request, so
// closing a session invalidates outstanding tokens immediately.
type TokenClaims struct {
	UserID    uint
	Email     string
	RoleID    uint
	RoleName  string
	SessionID string
	IssuedAt  int64
	ExpiresAt int64
}

// Course groups students for one academic year.
type Course struct {
	ID          uint
	Name        string
	Year        int
	Description string
	DeletedAt   *time.Time
}

// CourseModule is a teaching unit inside a course.
type CourseModule struct {
	ID          uint
	CourseID    uint
	Name        string
	Hours       int
	Description string
	DeletedAt   *time.Time
}

// StudentCourse links a student profile to a course (enrollment).
type StudentCourse struct {
	ID         uint
	StudentID  uint
	CourseID   uint
	EnrolledAt time.Time
}

// Organization is a company hosting practice placements.
type Organization struct {
	ID        uint
	Name      string
	CUIT      string
	Address   string
	Email     string
	Phone     string
	DeletedAt *time.Time
}

// Group is a working group of students under one teacher within a course.
type Group struct {
	ID         uint
	Name       string
	CourseID   uint
	TeacherID  uint
	StudentIDs []uint
	DeletedAt  *time.Time
}

// Task status values.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
)

// Task is work assigned to a group or a single student.
type Task struct {
	ID          uint
	Title       string
	Description string
	GroupID     *uint
	StudentID   *uint
	Status      string
	DueDate     *time.Time
	DeletedAt   *time.Time
}

// Attendance status values.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Attendance records one student's presence for one date.
type Attendance struct {
	ID           uint
	StudentID    uint
	Date         time.Time
	Status       string
	Observations string
}

// LogEntry is one line of a student's practice diary at an organization.
type LogEntry struct {
	ID             uint
	StudentID      uint
	OrganizationID *uint
	Date           time.Time
	Hours          float64
	Activity       string
	Observations   string
	DeletedAt      *time.Time
}
