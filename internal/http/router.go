package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/http/handlers"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/http/middleware"
)

// Handlers bundles every handler group the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandlers
	Users        *handlers.UserHandlers
	Courses      *handlers.CourseHandlers
	Organization *handlers.OrganizationHandlers
	Groups       *handlers.GroupHandlers
	Tasks        *handlers.TaskHandlers
	Attendance   *handlers.AttendanceHandlers
	LogEntries   *handlers.LogEntryHandlers
}

// BuildRouter wires routes, the JWT+session middleware and the role
// enforcement middleware.
func BuildRouter(h Handlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/auth/login", h.Auth.Login)

	v := r.Group("/", jwtmw.WithJWT(), cb.Enforce())

	v.GET("/auth/me", h.Auth.Me)
	v.POST("/auth/logout", h.Auth.Logout)
	v.GET("/auth/sessions", h.Auth.Sessions)
	v.POST("/auth/close-all-sessions", h.Auth.CloseAllSessions)
	v.POST("/auth/admin/close-sessions-by-email", h.Auth.CloseSessionsByEmail)

	v.POST("/users/students", h.Users.CreateStudent)
	v.POST("/users/teachers", h.Users.CreateTeacher)
	v.POST("/users/admins", h.Users.CreateAdmin)
	v.POST("/users/organization-contacts", h.Users.CreateOrgContact)
	v.DELETE("/users/:id", h.Users.Deactivate)
	v.POST("/users/:id/restore", h.Users.Restore)

	v.GET("/students", h.Users.ListStudents)
	v.GET("/students/:id/tasks", h.Tasks.ListByStudent)
	v.GET("/students/:id/attendance", h.Attendance.ListByStudent)
	v.GET("/students/:id/log-entries", h.LogEntries.ListByStudent)

	v.POST("/courses", h.Courses.Create)
	v.GET("/courses", h.Courses.List)
	v.GET("/courses/:id", h.Courses.Get)
	v.PUT("/courses/:id", h.Courses.Update)
	v.DELETE("/courses/:id", h.Courses.Delete)
	v.POST("/courses/:id/modules", h.Courses.CreateModule)
	v.GET("/courses/:id/modules", h.Courses.ListModules)
	v.GET("/courses/:id/students", h.Users.ListStudentsByCourse)
	v.PUT("/modules/:id", h.Courses.UpdateModule)
	v.DELETE("/modules/:id", h.Courses.DeleteModule)

	v.POST("/organizations", h.Organization.Create)
	v.GET("/organizations", h.Organization.List)
	v.GET("/organizations/:id", h.Organization.Get)
	v.PUT("/organizations/:id", h.Organization.Update)
	v.DELETE("/organizations/:id", h.Organization.Delete)
	v.GET("/organizations/:id/contacts", h.Organization.ListContacts)

	v.POST("/groups", h.Groups.Create)
	v.GET("/groups", h.Groups.List)
	v.GET("/groups/:id", h.Groups.Get)
	v.PUT("/groups/:id", h.Groups.Update)
	v.DELETE("/groups/:id", h.Groups.Delete)
	v.POST("/groups/:id/students", h.Groups.AddStudent)
	v.DELETE("/groups/:id/students/:studentId", h.Groups.RemoveStudent)

	v.POST("/tasks", h.Tasks.Create)
	v.GET("/tasks", h.Tasks.List)
	v.GET("/tasks/:id", h.Tasks.Get)
	v.PUT("/tasks/:id", h.Tasks.Update)
	v.PATCH("/tasks/:id/status", h.Tasks.UpdateStatus)
	v.DELETE("/tasks/:id", h.Tasks.Delete)

	v.POST("/attendance", h.Attendance.Create)
	v.GET("/attendance", h.Attendance.ListByDate)
	v.PUT("/attendance/:id", h.Attendance.Update)

	v.POST("/log-entries", h.LogEntries.Create)
	v.GET("/log-entries/:id", h.LogEntries.Get)
	v.PUT("/log-entries/:id", h.LogEntries.Update)
	v.DELETE("/log-entries/:id", h.LogEntries.Delete)

	return r
}
