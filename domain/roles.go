package domain

// RoleName is the closed set of account roles. The values match the seeded
// rows in the role table.
type RoleName string

const (
	RoleAdministrator RoleName = "Administrador"
	RoleTeacher       RoleName = "Profesor"
	RoleStudent       RoleName = "Estudiante"
	RoleTutor         RoleName = "Tutor"
	RoleOrgTutor      RoleName = "Tutor Empresa"
)

// AllRoles lists every role the system seeds at startup.
func AllRoles() []RoleName {
	return []RoleName{RoleAdministrator, RoleTeacher, RoleStudent, RoleTutor, RoleOrgTutor}
}

// ProfilePayload is the role-tagged payload for account provisioning. Each
// variant carries the fields of its profile table and knows which role it
// provisions, so the role is resolved once at the service boundary.
type ProfilePayload interface {
	Role() RoleName
	// NationalID is the fallback plaintext password when the request
	// carries none.
	NationalID() string
}

// StudentPayload provisions a Student profile and enrolls it in a course.
type StudentPayload struct {
	Name     string
	Lastname string
	DNI      string
	Phone    string
	CourseID uint
}

func (StudentPayload) Role() RoleName { return RoleStudent }
func (p StudentPayload) NationalID() string { return p.DNI }

// TeacherPayload provisions a Teacher profile. Tutor selects the academic
// tutor role; the profile table is shared with regular teachers.
type TeacherPayload struct {
	Name       string
	Lastname   string
	DNI        string
	Phone      string
	Department string
	Tutor      bool
}

func (p TeacherPayload) Role() RoleName {
	if p.Tutor {
		return RoleTutor
	}
	return RoleTeacher
}
func (p TeacherPayload) NationalID() string { return p.DNI }

// AdminPayload provisions an Admin profile.
type AdminPayload struct {
	Name     string
	Lastname string
	DNI      string
}

func (AdminPayload) Role() RoleName { return RoleAdministrator }
func (p AdminPayload) NationalID() string { return p.DNI }

// OrgContactPayload provisions an OrganizationContact profile tied to an
// existing organization.
type OrgContactPayload struct {
	OrganizationID uint
	Name           string
	Lastname       string
	Position       string
	Phone          string
	DNI            string
}

func (OrgContactPayload) Role() RoleName { return RoleOrgTutor }
func (p OrgContactPayload) NationalID() string { return p.DNI }
