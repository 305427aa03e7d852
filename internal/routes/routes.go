package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/pocket_ledger/internal/auth"
	"github.com/congo-pay/pocket_ledger/internal/config"
	"github.com/congo-pay/pocket_ledger/internal/identity"
	"github.com/congo-pay/pocket_ledger/internal/ledger"
	"github.com/congo-pay/pocket_ledger/internal/middleware"
	"github.com/congo-pay/pocket_ledger/internal/notification"
	"github.com/congo-pay/pocket_ledger/internal/password"
)

// Deps aggregates shared dependencies required to wire routes. DB and Cache
// may be nil in development, which selects the in-memory stores and the
// in-process login limiter.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	codec, err := auth.NewCodec(d.Cfg.JWTSecret, d.Cfg.SessionTTL)
	if err != nil {
		return fmt.Errorf("session codec: %w", err)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	app.Use(middleware.Metrics())

	RegisterHealthRoutes(app, d)

	var (
		users identity.Repository
		txs   ledger.Store
	)
	if d.DB != nil {
		users = identity.NewPostgresRepository(d.DB)
		txs = ledger.NewPostgresStore(d.DB)
	} else {
		d.Logger.Warn("no database configured, using in-memory stores")
		users = identity.NewMemoryRepository()
		txs = ledger.NewInMemory()
	}

	identitySvc := identity.NewService(users, password.NewHasher(d.Cfg.BcryptCost))
	authSvc := auth.NewService(identitySvc, codec)
	ledgerSvc := ledger.NewService(txs, notification.NewLoggerNotifier(d.Logger), d.Cfg.OwnerScoped)

	cookies := auth.CookieConfig{Name: d.Cfg.CookieName, Secure: d.Cfg.CookieSecure}
	gate := middleware.SessionAuth(codec, d.Cfg.CookieName, d.Logger)

	var idempotency fiber.Handler
	if d.Cache != nil {
		idempotency = middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	}

	RegisterIdentityRoutes(app, identity.NewHandler(identitySvc, d.Logger), identitySvc, gate)
	RegisterAuthRoutes(app, auth.NewHandler(authSvc, cookies, d.Logger),
		middleware.LoginRateLimit(d.Cache, d.Cfg.LoginPerMin, d.Logger))
	RegisterLedgerRoutes(app, ledger.NewHandler(ledgerSvc), ledgerSvc.OwnerScoped(), gate, idempotency)

	return nil
}
