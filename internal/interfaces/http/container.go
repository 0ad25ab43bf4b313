package http

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"aula/internal/application/access"
	"aula/internal/application/billing/provider"
	billingusecases "aula/internal/application/billing/usecases"
	notificationapp "aula/internal/application/notification"
	notificationusecases "aula/internal/application/notification/usecases"
	"aula/internal/application/permission"
	userusecases "aula/internal/application/user/usecases"
	"aula/internal/domain/shared/events"
	"aula/internal/domain/user"
	"aula/internal/infrastructure/auth"
	"aula/internal/infrastructure/cache"
	"aula/internal/infrastructure/config"
	"aula/internal/infrastructure/email"
	infrapermission "aula/internal/infrastructure/permission"
	"aula/internal/infrastructure/ratelimit"
	"aula/internal/infrastructure/repository"
	"aula/internal/interfaces/http/handlers"
	"aula/internal/interfaces/http/middleware"
	"aula/internal/shared/logger"
	"aula/internal/shared/markdown"
)

// Container wires repositories, services, use cases and handlers. It is
// built once at startup and owns no request state.
type Container struct {
	cfg              *config.Config
	logger           logger.Interface
	dispatcher       *events.InMemoryEventDispatcher
	entitlementSweep *billingusecases.SweepLapsedEntitlementsUseCase

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	accessGuard          *middleware.AccessGuardMiddleware
	rateLimit            *middleware.RateLimitMiddleware

	authHandler         *handlers.AuthHandler
	accessHandler       *handlers.AccessHandler
	webhookHandler      *handlers.WebhookHandler
	notificationHandler *handlers.NotificationHandler
	adminHandler        *handlers.AdminHandler
	healthHandler       *handlers.HealthHandler
}

// jwtAdapter bridges the infrastructure JWT service to the application
// layer's token issuer interface.
type jwtAdapter struct {
	svc *auth.JWTService
}

func (a jwtAdapter) Generate(userUUID string, role user.Role) (*userusecases.TokenPair, error) {
	pair, err := a.svc.Generate(userUUID, role)
	if err != nil {
		return nil, err
	}
	return &userusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a jwtAdapter) Refresh(refreshToken string) (*userusecases.TokenPair, error) {
	pair, err := a.svc.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return &userusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewContainer builds the full dependency graph.
func NewContainer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	// Repositories
	userRepo := repository.NewUserRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	paymentRepo := repository.NewPaymentRecordRepository(db, log)
	webhookEventRepo := repository.NewWebhookEventRepository(db, log)
	notificationRepo := repository.NewNotificationRepository(db, log)

	// Permission enforcement
	enforcer, err := infrapermission.NewEnforcer(db, cfg.Permission.ModelPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build policy enforcer: %w", err)
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return nil, fmt.Errorf("failed to seed policies: %w", err)
	}
	permissionService := permission.NewService(enforcer, log.Named("permission"))

	// Auth
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokens := jwtAdapter{svc: jwtService}

	// Notifications
	markdownService := markdown.NewService()
	var emailSender notificationusecases.EmailSender
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	}
	notificationService := notificationapp.NewService(
		notificationRepo,
		userRepo,
		emailSender,
		markdownService,
		log.Named("notification"),
	)

	// Access pipeline
	entitlementCache := cache.NewEntitlementCache(
		redisClient,
		time.Duration(cfg.Access.EntitlementCacheTTLMinutes)*time.Minute,
		log.Named("cache"),
	)
	roleStore := access.NewRoleStore(
		userRepo,
		time.Duration(cfg.Access.ResolveTimeoutSeconds)*time.Second,
		log.Named("access"),
	)
	entitlements := access.NewSubscriptionResolver(subscriptionRepo, entitlementCache, log.Named("access"))
	routeTable := access.DefaultRouteTable()
	if err := routeTable.Validate(); err != nil {
		return nil, fmt.Errorf("route table failed validation: %w", err)
	}
	guard := access.NewGuard(routeTable)
	accessService := access.NewService(roleStore, entitlements, guard, log.Named("access"))

	// Billing pipeline
	verifier := provider.NewSignatureVerifier(
		cfg.Billing.WebhookSecret,
		time.Duration(cfg.Billing.SignatureToleranceSeconds)*time.Second,
	)
	dedupe := cache.NewWebhookDedupe(
		redisClient,
		time.Duration(cfg.Billing.EventDedupeTTLHours)*time.Hour,
	)
	billingLog := log.Named("billing")
	upsert := billingusecases.NewUpsertSubscriptionUseCase(userRepo, subscriptionRepo, entitlementCache, notificationService, billingLog)
	cancel := billingusecases.NewCancelSubscriptionUseCase(subscriptionRepo, entitlementCache, notificationService, billingLog)
	recordPayment := billingusecases.NewRecordPaymentUseCase(userRepo, subscriptionRepo, paymentRepo, notificationService, billingLog)
	paymentFailed := billingusecases.NewPaymentFailedUseCase(userRepo, notificationService, billingLog)
	entitlementSweep := billingusecases.NewSweepLapsedEntitlementsUseCase(subscriptionRepo, entitlementCache, billingLog)
	linkCustomer := billingusecases.NewLinkCustomerUseCase(userRepo, billingLog)
	processWebhook := billingusecases.NewProcessWebhookEventUseCase(
		verifier,
		webhookEventRepo,
		dedupe,
		upsert,
		cancel,
		recordPayment,
		paymentFailed,
		linkCustomer,
		billingLog,
	)

	// Domain events
	dispatcher := events.NewInMemoryEventDispatcher(100, log.Named("events"))
	roleChangeHandler := notificationapp.NewRoleChangeHandler(userRepo, notificationService, log.Named("notification"))
	if err := dispatcher.Subscribe(user.EventTypeUserRoleChanged, roleChangeHandler); err != nil {
		return nil, fmt.Errorf("failed to subscribe role change handler: %w", err)
	}

	// User use cases
	userLog := log.Named("user")
	register := userusecases.NewRegisterWithPasswordUseCase(userRepo, hasher, tokens, permissionService, userLog)
	login := userusecases.NewLoginWithPasswordUseCase(userRepo, hasher, tokens, userLog)
	refresh := userusecases.NewRefreshTokenUseCase(tokens, userLog)
	listUsers := userusecases.NewListUsersUseCase(userRepo, userLog)
	getUser := userusecases.NewGetUserUseCase(userRepo, subscriptionRepo, userLog)
	setUserRole := userusecases.NewSetUserRoleUseCase(userRepo, permissionService, dispatcher, userLog)

	return &Container{
		cfg:              cfg,
		logger:           log,
		dispatcher:       dispatcher,
		entitlementSweep: entitlementSweep,

		authMiddleware:       middleware.NewAuthMiddleware(jwtService, userRepo, log.Named("auth")),
		permissionMiddleware: middleware.NewPermissionMiddleware(permissionService, log.Named("permission")),
		accessGuard:          middleware.NewAccessGuardMiddleware(accessService, log.Named("access")),
		rateLimit:            middleware.NewRateLimitMiddleware(ratelimit.NewRedisLimiter(redisClient), log.Named("ratelimit")),

		authHandler:         handlers.NewAuthHandler(register, login, refresh, log),
		accessHandler:       handlers.NewAccessHandler(accessService, log),
		webhookHandler:      handlers.NewWebhookHandler(processWebhook, billingLog),
		notificationHandler: handlers.NewNotificationHandler(notificationService, log),
		adminHandler:        handlers.NewAdminHandler(listUsers, getUser, setUserRole, notificationService, log),
		healthHandler:       handlers.NewHealthHandler(db),
	}, nil
}

// Start begins background processing owned by the container.
func (c *Container) Start() error {
	return c.dispatcher.Start()
}

// Stop shuts down background processing.
func (c *Container) Stop() error {
	return c.dispatcher.Stop()
}

// EntitlementSweep exposes the lapsed-entitlement sweep for scheduling.
func (c *Container) EntitlementSweep() *billingusecases.SweepLapsedEntitlementsUseCase {
	return c.entitlementSweep
}
