package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	casesusecases "casefile/internal/application/cases/usecases"
	userusecases "casefile/internal/application/user/usecases"
	vo "casefile/internal/domain/cases/valueobjects"
	"casefile/internal/infrastructure/auth"
	"casefile/internal/infrastructure/config"
	"casefile/internal/infrastructure/email"
	"casefile/internal/infrastructure/ratelimit"
	"casefile/internal/infrastructure/repository"
	"casefile/internal/infrastructure/storage"
	"casefile/internal/interfaces/http/handlers"
	"casefile/internal/interfaces/http/middleware"
	"casefile/internal/interfaces/http/routes"
	"casefile/internal/shared/db"
	"casefile/internal/shared/logger"
	"casefile/internal/shared/utils"
)

// Router wires repositories, use cases, handlers and middleware into a
// configured Gin engine.
type Router struct {
	engine          *gin.Engine
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	caseHandler     *handlers.CaseHandler
	authMiddleware  *middleware.AuthMiddleware
	signinRateLimit gin.HandlerFunc
	log             logger.Interface
	allowedOrigins  []string
}

// NewRouter creates the HTTP router with all dependencies resolved from the
// database handle and configuration.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	registerValidations()

	userRepo := repository.NewUserRepository(database)
	caseRepo := repository.NewCaseRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	txMgr := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.TokenExpHours)

	var emailService userusecases.EmailService
	if cfg.Email.Enabled {
		emailService = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	} else {
		emailService = email.NewNoopEmailService()
	}

	objectStorage := storage.NewS3Storage(cfg.Storage)

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, emailService, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)
	completeProfileUC := userusecases.NewCompleteProfileUseCase(userRepo, log)

	createCaseUC := casesusecases.NewCreateCaseUseCase(caseRepo, txMgr, log)
	updateCaseUC := casesusecases.NewUpdateCaseUseCase(caseRepo, log)
	getCaseUC := casesusecases.NewGetCaseUseCase(caseRepo, log)
	listCasesUC := casesusecases.NewListCasesUseCase(caseRepo, log)
	addAttachmentUC := casesusecases.NewAddAttachmentUseCase(caseRepo, attachmentRepo, objectStorage, log)
	listAttachmentsUC := casesusecases.NewListAttachmentsUseCase(caseRepo, attachmentRepo, objectStorage, log)

	var signinRateLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := ratelimit.NewRedisLimiter(redisClient)
		signinRateLimit = middleware.SigninRateLimit(limiter, ratelimit.Limits{
			PerMinute: cfg.RateLimit.SigninPerMinute,
			PerHour:   cfg.RateLimit.SigninPerHour,
		}, log)
	}

	return &Router{
		engine:          engine,
		authHandler:     handlers.NewAuthHandler(registerUC, loginUC),
		userHandler:     handlers.NewUserHandler(getUserUC, completeProfileUC),
		caseHandler:     handlers.NewCaseHandler(createCaseUC, updateCaseUC, getCaseUC, listCasesUC, addAttachmentUC, listAttachmentsUC),
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
		signinRateLimit: signinRateLimit,
		log:             log,
		allowedOrigins:  cfg.Server.AllowedOrigins,
	}
}

// SetupRoutes configures middleware and all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:     r.authHandler,
		SigninRateLimit: r.signinRateLimit,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupCaseRoutes(r.engine, &routes.CaseRouteConfig{
		CaseHandler:    r.caseHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// registerValidations adds the case status rule to Gin's binding validator
// so malformed statuses are rejected at bind time.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("casestatus", func(fl validator.FieldLevel) bool {
			return vo.NormalizeStatus(fl.Field().String()).IsValid()
		})
	}
}
