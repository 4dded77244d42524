package main

import (
	"fmt"
	"log"
	"net/http/pprof"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/briarwood/studio-scheduler/api/swagger"
	internalhandler "github.com/briarwood/studio-scheduler/internal/handler"
	internalmiddleware "github.com/briarwood/studio-scheduler/internal/middleware"
	"github.com/briarwood/studio-scheduler/internal/models"
	"github.com/briarwood/studio-scheduler/internal/repository"
	"github.com/briarwood/studio-scheduler/internal/service"
	"github.com/briarwood/studio-scheduler/pkg/cache"
	"github.com/briarwood/studio-scheduler/pkg/config"
	"github.com/briarwood/studio-scheduler/pkg/database"
	"github.com/briarwood/studio-scheduler/pkg/logger"
	corsmiddleware "github.com/briarwood/studio-scheduler/pkg/middleware/cors"
	reqidmiddleware "github.com/briarwood/studio-scheduler/pkg/middleware/requestid"
)

// @title Studio Scheduler API
// @version 0.1.0
// @description Room/time/teacher scheduling service for a dance studio
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	metricsHandler := internalhandler.NewMetricsHandler(metricsSvc)

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to initialise database", "error", err)
	}
	defer db.Close()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		registerPprof(r)
	}

	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)

	authRepo := repository.NewUserRepository(db)
	authSvc := service.NewAuthService(authRepo, nil, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "studio-scheduler",
		Audience:           []string{"studio-scheduler-clients"},
	})
	authHandler := internalhandler.NewAuthHandler(authSvc)

	authRoutes := api.Group("/auth")
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
	authRoutes.POST("/reset-password", authHandler.ResetPassword)
	protectedAuth := authRoutes.Group("")
	protectedAuth.Use(internalmiddleware.JWT(authSvc))
	protectedAuth.POST("/logout", authHandler.Logout)
	protectedAuth.POST("/change-password", authHandler.ChangePassword)

	teacherRepo := repository.NewTeacherRepository(db)
	semesterScheduleRepo := repository.NewSemesterScheduleRepository(db)
	semesterSlotRepo := repository.NewSemesterScheduleSlotRepository(db)

	teacherSvc := service.NewTeacherService(teacherRepo, nil, logr)
	teacherHandler := internalhandler.NewTeacherHandler(teacherSvc)

	userSvc := service.NewUserService(authRepo, nil, logr)
	userHandler := internalhandler.NewUserHandler(userSvc)

	var cacheRepo service.CacheRepository
	var cacheCloser interface{ Close() error }
	if cfg.RoomTimeScheduler.Enabled {
		if client, err := cache.NewRedis(cfg.Redis); err != nil {
			logr.Sugar().Warnw("cache disabled", "error", err)
		} else {
			cacheCloser = client
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	if cacheCloser != nil {
		defer cacheCloser.Close()
	}

	var roomTimeHandler *internalhandler.RoomTimeHandler
	if cfg.RoomTimeScheduler.Enabled {
		studioRepo := repository.NewStudioRepository(db)
		placementRepo := repository.NewPlacementRepository(db)
		roomTimeCache := service.NewCacheService(cacheRepo, metricsSvc, cfg.RoomTimeScheduler.ProposalTTL, logr, cacheRepo != nil)
		roomTimeSvc := service.NewRoomTimeService(
			studioRepo,
			studioRepo,
			studioRepo,
			studioRepo,
			semesterScheduleRepo,
			placementRepo,
			db,
			nil,
			logr,
			service.RoomTimeGeneratorConfig{
				ProposalTTL: cfg.RoomTimeScheduler.ProposalTTL,
				RunGuard:    cfg.RoomTimeScheduler.RunGuard,
			},
			roomTimeCache,
			metricsSvc,
		)
		roomTimeHandler = internalhandler.NewRoomTimeHandler(roomTimeSvc)
	}

	secured := api.Group("")
	secured.Use(internalmiddleware.JWT(authSvc))

	teachersGroup := secured.Group("/teachers")
	teachersGroup.GET("", internalmiddleware.RBAC(string(models.RoleAdmin), string(models.RoleSuperAdmin)), teacherHandler.List)
	teachersGroup.POST("", internalmiddleware.RBAC(string(models.RoleAdmin), string(models.RoleSuperAdmin)), teacherHandler.Create)
	teachersGroup.GET("/:id", internalmiddleware.RBAC("SELF", string(models.RoleAdmin), string(models.RoleSuperAdmin)), teacherHandler.Get)
	teachersGroup.PUT("/:id", internalmiddleware.RBAC(string(models.RoleAdmin), string(models.RoleSuperAdmin)), teacherHandler.Update)
	teachersGroup.DELETE("/:id", internalmiddleware.RBAC(string(models.RoleSuperAdmin)), teacherHandler.Delete)

	usersGroup := secured.Group("/users")
	usersGroup.Use(internalmiddleware.RBAC(string(models.RoleSuperAdmin)))
	usersGroup.GET("", userHandler.List)
	usersGroup.POST("", userHandler.Create)
	usersGroup.GET("/:id", userHandler.Get)
	usersGroup.PUT("/:id", userHandler.Update)
	usersGroup.DELETE("/:id", userHandler.Delete)

	if roomTimeHandler != nil {
		roomTimeGroup := secured.Group("/schedule/room-time")
		roomTimeGroup.Use(internalmiddleware.WithResponseMeta())
		roomTimeGroup.POST("/generate",
			internalmiddleware.RBAC(string(models.RoleAdmin), string(models.RoleSuperAdmin)),
			internalmiddleware.Audit(authRepo, models.AuditActionRoomTimeGenerate, "room_time_schedule"),
			roomTimeHandler.Generate)
		roomTimeGroup.POST("/:id/assign-teachers", internalmiddleware.RBAC(string(models.RoleAdmin), string(models.RoleSuperAdmin)), roomTimeHandler.AssignTeachers)
		roomTimeGroup.POST("/:id/save",
			internalmiddleware.RBAC(string(models.RoleAdmin), string(models.RoleSuperAdmin)),
			internalmiddleware.Audit(authRepo, models.AuditActionRoomTimeSave, "room_time_schedule"),
			roomTimeHandler.Save)
		roomTimeGroup.GET("/:id/export.pdf", internalmiddleware.RBAC(string(models.RoleTeacher), string(models.RoleAdmin), string(models.RoleSuperAdmin)), roomTimeHandler.ExportPDF)
		roomTimeGroup.GET("/:id/audit", internalmiddleware.RBAC(string(models.RoleAdmin), string(models.RoleSuperAdmin)), roomTimeHandler.Audit)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func registerPprof(r *gin.Engine) {
	group := r.Group("/debug/pprof")
	group.GET("/", gin.WrapF(pprof.Index))
	group.GET("/cmdline", gin.WrapF(pprof.Cmdline))
	group.GET("/profile", gin.WrapF(pprof.Profile))
	group.POST("/symbol", gin.WrapF(pprof.Symbol))
	group.GET("/symbol", gin.WrapF(pprof.Symbol))
	group.GET("/trace", gin.WrapF(pprof.Trace))
	group.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
	group.GET("/block", gin.WrapH(pprof.Handler("block")))
	group.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
	group.GET("/heap", gin.WrapH(pprof.Handler("heap")))
	group.GET("/mutex", gin.WrapH(pprof.Handler("mutex")))
	group.GET("/threadcreate", gin.WrapH(pprof.Handler("threadcreate")))
}
