package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/danahmadi/bookora_backend/config"
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
	emailpkg "github.com/danahmadi/bookora_backend/pkg/email"
	pasetotoken "github.com/danahmadi/bookora_backend/pkg/paseto"
	paylinkpkg "github.com/danahmadi/bookora_backend/pkg/paylink"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvideBusinessService,
		ProvideCustomerService,
		ProvideSchedulingService,
		ProvideBookingService,
		ProvideChargeService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, authz, cfg)
}

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvideBusinessService(db *repo.Client, authz authorize.IAuthorization) business.Service {
	return business.New(db, authz)
}

func ProvideCustomerService(db *repo.Client) customer.Service {
	return customer.New(db)
}

func ProvideSchedulingService(db *repo.Client) scheduling.Service {
	return scheduling.New(db)
}

func ProvideBookingService(db *repo.Client, nc *nats.Conn) booking.Service {
	return booking.New(db, nc)
}

func ProvideChargeService(db *repo.Client, pl *paylinkpkg.Client, mail *emailpkg.Client, nc *nats.Conn) charge.Service {
	return charge.New(db, pl, mail, nc)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
