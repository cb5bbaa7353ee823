package initialize

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"inkwell/backend/app/controllers"
	"inkwell/backend/app/db"
	jwtutil "inkwell/backend/app/jwt"
	"inkwell/backend/app/middleware"
	"inkwell/backend/app/models"
	"inkwell/backend/app/ratelimit"
	"inkwell/backend/app/repo"
	"inkwell/backend/app/services"
	"inkwell/backend/config"
	"inkwell/backend/global"
	"inkwell/backend/router"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Authn   *services.AuthService
	Users   *services.UserService
	Journal *services.JournalService
}

// Build loads config, connects storage, migrates, seeds the bootstrap admin
// and wires the whole request path. It fails hard if the admin invariant
// cannot be established.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.JournalEntry{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var limiter ratelimit.Limiter
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		global.Rdb = rdb
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.Redis.LoginMaxAttempts,
			time.Duration(cfg.Redis.LoginWindowMin)*time.Minute)
	}

	userRepo := repo.NewUserRepository(gdb)
	journalRepo := repo.NewJournalRepository(gdb)

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpHours: cfg.JWT.ExpHours}
	if cfg.JWT.Secret == "dev-secret" {
		global.Logger.Warn().Msg("using default jwt secret; set jwt.secret for any real deployment")
	}

	userSvc := services.NewUserService(userRepo, journalRepo)
	authSvc := services.NewAuthService(userRepo, signer, limiter)
	journalSvc := services.NewJournalService(journalRepo, userRepo)

	if err := userSvc.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	mw := &middleware.Auth{Authn: authSvc}
	authCtrl := controllers.NewAuthController(authSvc, userSvc)
	journalCtrl := controllers.NewJournalController(journalSvc)
	userCtrl := controllers.NewUserController(userSvc)
	adminCtrl := controllers.NewAdminController(userSvc, journalSvc)

	h := router.NewRouter(authCtrl, journalCtrl, userCtrl, adminCtrl, mw)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Authn: authSvc, Users: userSvc, Journal: journalSvc}, nil
}
