package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/config"
	httpx "github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/http"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/http/handlers"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/http/middleware"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/infrastructure/auth"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/infrastructure/database"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/infrastructure/repositories"
	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/internal/services"
)

// Run builds the dependency graph from configuration and serves HTTP. All
// collaborators are constructed here and injected; nothing initializes at
// import time.
func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb, repositories.AllModels()...); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiresIn)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	roleRepo := repositories.NewRoleRepository(gdb)
	accountRepo := repositories.NewAccountRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(gdb, rdb, cfg.SessionCacheTTL)
	attemptRepo := repositories.NewLoginAttemptRepository(gdb)
	studentRepo := repositories.NewStudentRepository(gdb)
	courseRepo := repositories.NewCourseRepository(gdb)
	orgRepo := repositories.NewOrganizationRepository(gdb)
	groupRepo := repositories.NewGroupRepository(gdb)
	taskRepo := repositories.NewTaskRepository(gdb)
	attendanceRepo := repositories.NewAttendanceRepository(gdb)
	logRepo := repositories.NewLogEntryRepository(gdb)

	if err := roleRepo.EnsureSeeded(context.Background()); err != nil {
		return err
	}

	// Services
	provisioningSvc := services.NewProvisioningService(accountRepo, roleRepo, passwordSvc)
	authSvc := services.NewAuthService(userRepo, roleRepo, sessionRepo, attemptRepo, passwordSvc, tokenSvc, cfg.MaxActiveSessions, cfg.JWTExpiresIn)
	accountSvc := services.NewAccountService(accountRepo, sessionRepo)

	// Handlers
	h := httpx.Handlers{
		Auth:         handlers.NewAuthHandlers(authSvc, userRepo, roleRepo),
		Users:        handlers.NewUserHandlers(provisioningSvc, accountSvc, studentRepo),
		Courses:      handlers.NewCourseHandlers(courseRepo),
		Organization: handlers.NewOrganizationHandlers(orgRepo),
		Groups:       handlers.NewGroupHandlers(groupRepo),
		Tasks:        handlers.NewTaskHandlers(taskRepo),
		Attendance:   handlers.NewAttendanceHandlers(attendanceRepo),
		LogEntries:   handlers.NewLogEntryHandlers(logRepo),
	}

	jwtMW := middleware.NewAuthMW(tokenSvc, sessionRepo)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(h, jwtMW, casbinMW)

	seedPolicies(cas)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policies on first run.
func seedPolicies(cas *auth.CasbinService) {
	if len(cas.E.GetPolicy()) > 0 {
		return
	}

	selfService := [][2]string{
		{"/auth/me", "GET"},
		{"/auth/logout", "POST"},
		{"/auth/sessions", "GET"},
		{"/auth/close-all-sessions", "POST"},
	}
	for _, role := range []string{"role_Administrador", "role_Profesor", "role_Tutor", "role_Estudiante", "role_Tutor Empresa"} {
		for _, p := range selfService {
			cas.E.AddPolicy(role, p[0], p[1])
		}
	}

	cas.E.AddPolicy("role_Administrador", "/*", "(GET|POST|PUT|PATCH|DELETE)")

	for _, role := range []string{"role_Profesor", "role_Tutor"} {
		cas.E.AddPolicy(role, "/students", "GET")
		cas.E.AddPolicy(role, "/students/*", "GET")
		cas.E.AddPolicy(role, "/courses", "GET")
		cas.E.AddPolicy(role, "/courses/*", "GET")
		cas.E.AddPolicy(role, "/groups", "(GET|POST)")
		cas.E.AddPolicy(role, "/groups/*", "(GET|POST|PUT|DELETE)")
		cas.E.AddPolicy(role, "/tasks", "(GET|POST)")
		cas.E.AddPolicy(role, "/tasks/*", "(GET|PUT|PATCH|DELETE)")
		cas.E.AddPolicy(role, "/attendance", "(GET|POST)")
		cas.E.AddPolicy(role, "/attendance/*", "PUT")
		cas.E.AddPolicy(role, "/log-entries", "GET")
		cas.E.AddPolicy(role, "/log-entries/*", "GET")
	}

	cas.E.AddPolicy("role_Estudiante", "/students/*", "GET")
	cas.E.AddPolicy("role_Estudiante", "/tasks/*", "(GET|PATCH)")
	cas.E.AddPolicy("role_Estudiante", "/log-entries", "POST")
	cas.E.AddPolicy("role_Estudiante", "/log-entries/*", "(GET|PUT)")

	cas.E.AddPolicy("role_Tutor Empresa", "/students/*", "GET")
	cas.E.AddPolicy("role_Tutor Empresa", "/log-entries", "POST")
	cas.E.AddPolicy("role_Tutor Empresa", "/log-entries/*", "GET")

	_ = cas.E.SavePolicy()
	log.Println("casbin: seeded default policies")
}
