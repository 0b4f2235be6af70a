package server

import (
	"net/http"

	"schoolbackend/internal/config"
	"schoolbackend/internal/handler"
	"schoolbackend/internal/middleware"
	"schoolbackend/internal/notify"
	"schoolbackend/internal/repository"
	"schoolbackend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	logger *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	router := gin.Default()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) setupRoutes() error {
	// The single token validation policy for the whole application. The gate
	// is the only layer that checks tokens; it enforces signature, expiry,
	// issuer and audience.
	tokenService, err := service.NewTokenService(service.TokenConfig{
		Secret:   s.cfg.JWT.Secret,
		Issuer:   s.cfg.JWT.Issuer,
		Audience: s.cfg.JWT.Audience,
		Lifetime: s.cfg.TokenLifetime(),
	}, service.PolicyStrict)
	if err != nil {
		return err
	}

	authRepo := repository.NewAuthUserRepository(s.db, s.logger)
	studentRepo := repository.NewStudentRepository(s.db, s.logger)
	courseRepo := repository.NewCourseRepository(s.db, s.logger)

	hub := notify.NewHub(s.logger)

	authService := service.NewAuthService(authRepo, studentRepo, tokenService, s.logger)
	authHandler := handler.NewAuthHandler(authService, s.logger)
	studentHandler := handler.NewStudentHandler(studentRepo, hub, s.logger)
	courseHandler := handler.NewCourseHandler(courseRepo, hub, s.logger)

	// Every request passes the gate before any business handler.
	s.router.Use(middleware.RequestGate(tokenService, s.logger))

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Authentication routes (gate-exempt)
	authGroup := s.router.Group("/api/Authentication")
	authGroup.POST("/Register", authHandler.Register)
	authGroup.POST("/Login", authHandler.Login)

	// Real-time change notifications (gate-exempt)
	s.router.GET("/api/schoolNotifications", notify.StreamHandler(hub))

	// Protected resources
	students := s.router.Group("/api/Students")
	{
		students.POST("/CreateStudent", studentHandler.CreateStudent)
		students.GET("", studentHandler.GetStudents)
		students.GET("/:studentId", studentHandler.GetStudent)
		students.PUT("/:studentId", studentHandler.UpdateStudent)
		students.DELETE("/:studentId", studentHandler.DeleteStudent)
	}

	courses := s.router.Group("/api/Courses")
	{
		courses.POST("/CreateCourse", courseHandler.CreateCourse)
		courses.GET("", courseHandler.GetCourses)
		courses.GET("/:courseId", courseHandler.GetCourse)
		courses.PUT("/:courseId", courseHandler.UpdateCourse)
		courses.DELETE("/:courseId", courseHandler.DeleteCourse)
	}

	return nil
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
