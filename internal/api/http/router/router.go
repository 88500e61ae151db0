package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/danahmadi/bookora_backend/config"
	"github.com/danahmadi/bookora_backend/internal/api/http/handler"
	"github.com/danahmadi/bookora_backend/internal/api/http/middleware"
	"github.com/danahmadi/bookora_backend/internal/repo"
	"github.com/danahmadi/bookora_backend/internal/service/auth"
	"github.com/danahmadi/bookora_backend/internal/service/booking"
	"github.com/danahmadi/bookora_backend/internal/service/business"
	"github.com/danahmadi/bookora_backend/internal/service/charge"
	"github.com/danahmadi/bookora_backend/internal/service/customer"
	"github.com/danahmadi/bookora_backend/internal/service/notification"
	"github.com/danahmadi/bookora_backend/internal/service/scheduling"
	"github.com/danahmadi/bookora_backend/internal/service/user"
	"github.com/danahmadi/bookora_backend/pkg/authorize"
	pasetotoken "github.com/danahmadi/bookora_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	DB              *repo.Client
	AuthSvc         auth.Service
	UserSvc         user.Service
	BusinessSvc     business.Service
	CustomerSvc     customer.Service
	SchedulingSvc   scheduling.Service
	BookingSvc      booking.Service
	ChargeSvc       charge.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	businessHeader := middleware.BusinessHeader(r.p.DB)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	businessH := handler.NewBusinessHandler(r.p.BusinessSvc)
	customerH := handler.NewCustomerHandler(r.p.CustomerSvc)
	scheduleH := handler.NewScheduleHandler(r.p.SchedulingSvc)
	bookingH := handler.NewBookingHandler(r.p.BookingSvc)
	chargeH := handler.NewChargeHandler(r.p.ChargeSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired)
	r.registerBusinessRoutes(api, businessH, authRequired, businessHeader, requirePerm)
	r.registerCustomerRoutes(api, customerH, authRequired, businessHeader, requirePerm)
	r.registerScheduleRoutes(api, scheduleH, authRequired, businessHeader, requirePerm)
	r.registerBookingRoutes(api, bookingH, authRequired, businessHeader, requirePerm)
	r.registerChargeRoutes(app, api, chargeH, authRequired, businessHeader, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
