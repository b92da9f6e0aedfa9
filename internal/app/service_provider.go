package app

import (
	"fmt"
	"log"
	"os"
	"time"

	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/clubsphere/backend/internal/adapters/config"
	"github.com/clubsphere/backend/internal/adapters/primary/http/handlers/admin"
	"github.com/clubsphere/backend/internal/adapters/primary/http/handlers/auth"
	"github.com/clubsphere/backend/internal/adapters/primary/http/handlers/clubadmin"
	"github.com/clubsphere/backend/internal/adapters/primary/http/handlers/student"
	"github.com/clubsphere/backend/internal/adapters/primary/http/middlewares"
	"github.com/clubsphere/backend/internal/adapters/primary/http/server"
	"github.com/clubsphere/backend/internal/adapters/secondary/postgres"
	"github.com/clubsphere/backend/internal/adapters/secondary/redis"
	"github.com/clubsphere/backend/internal/domain/service"
	"github.com/clubsphere/backend/internal/ports/primary"
	"github.com/clubsphere/backend/internal/ports/secondary"
	"github.com/clubsphere/backend/pkg/logger"
)

type serviceProvider struct {
	// Configuration
	cfg *config.Config

	// Infrastructure
	db          *gorm.DB
	redisClient *redis.Client

	// Storage layer
	userRepo         secondary.UserRepository
	clubRepo         secondary.ClubRepository
	categoryRepo     secondary.CategoryRepository
	membershipRepo   secondary.MembershipRepository
	applicationRepo  secondary.ApplicationRepository
	announcementRepo secondary.AnnouncementRepository
	eventRepo        secondary.EventRepository

	// Service layer
	userService         primary.UserService
	statsService        primary.StatsService
	clubService         primary.ClubService
	categoryService     primary.CategoryService
	membershipService   primary.MembershipService
	applicationService  primary.ApplicationService
	announcementService primary.AnnouncementService
	eventService        primary.EventService
	authService         primary.AuthService

	// HTTP layer
	authHandler        *auth.Handler
	studentHandler     *student.Handler
	clubAdminHandler   *clubadmin.Handler
	adminHandler       *admin.Handler
	middlewaresHandler *middlewares.Handler
	httpServer         *server.Server
}

func newServiceProvider() *serviceProvider {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(fmt.Errorf("failed to create config: %w", err))
	}

	return &serviceProvider{
		cfg: cfg,
	}
}

// Infrastructure dependencies

func (s *serviceProvider) DB() *gorm.DB {
	if s.db == nil {
		var gormConfig *gorm.Config
		if s.cfg.Logger.Debug() {
			newLogger := gormLogger.New(
				log.New(os.Stdout, "\r\n", log.LstdFlags),
				gormLogger.Config{
					SlowThreshold: time.Second,
					LogLevel:      gormLogger.Info,
					Colorful:      true,
				},
			)
			gormConfig = &gorm.Config{
				TranslateError: true,
				Logger:         newLogger,
			}
		} else {
			gormConfig = &gorm.Config{
				TranslateError: true,
			}
		}

		database, err := gorm.Open(postgresDriver.Open(s.cfg.PG.DSN()), gormConfig)
		if err != nil {
			panic(fmt.Errorf("failed to connect to the database: %w", err))
		}
		logger.Log.Info("Successfully connected to the database")

		sqlDB, err := database.DB()
		if err != nil {
			panic(fmt.Errorf("failed to get underlying sql.DB: %w", err))
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(1 * time.Minute)

		if err = postgres.Migrate(database); err != nil {
			panic(fmt.Errorf("failed to migrate database: %w", err))
		}

		s.db = database
	}

	return s.db
}

func (s *serviceProvider) RedisClient() *redis.Client {
	if s.redisClient == nil {
		r, err := redis.New(redis.Options{
			Host:     s.cfg.RedisConf.Host(),
			Port:     s.cfg.RedisConf.Port(),
			Password: s.cfg.RedisConf.Password(),
		})
		if err != nil {
			panic(fmt.Errorf("failed to connect to redis: %w", err))
		}

		s.redisClient = r
	}

	return s.redisClient
}

// Storage layer

func (s *serviceProvider) UserRepo() secondary.UserRepository {
	if s.userRepo == nil {
		s.userRepo = postgres.NewUserRepository(s.DB())
	}

	return s.userRepo
}

func (s *serviceProvider) ClubRepo() secondary.ClubRepository {
	if s.clubRepo == nil {
		s.clubRepo = postgres.NewClubRepository(s.DB())
	}

	return s.clubRepo
}

func (s *serviceProvider) CategoryRepo() secondary.CategoryRepository {
	if s.categoryRepo == nil {
		s.categoryRepo = postgres.NewCategoryRepository(s.DB())
	}

	return s.categoryRepo
}

func (s *serviceProvider) MembershipRepo() secondary.MembershipRepository {
	if s.membershipRepo == nil {
		s.membershipRepo = postgres.NewMembershipRepository(s.DB())
	}

	return s.membershipRepo
}

func (s *serviceProvider) ApplicationRepo() secondary.ApplicationRepository {
	if s.applicationRepo == nil {
		s.applicationRepo = postgres.NewApplicationRepository(s.DB())
	}

	return s.applicationRepo
}

func (s *serviceProvider) AnnouncementRepo() secondary.AnnouncementRepository {
	if s.announcementRepo == nil {
		s.announcementRepo = postgres.NewAnnouncementRepository(s.DB())
	}

	return s.announcementRepo
}

func (s *serviceProvider) EventRepo() secondary.EventRepository {
	if s.eventRepo == nil {
		s.eventRepo = postgres.NewEventRepository(s.DB())
	}

	return s.eventRepo
}

// Service layer

func (s *serviceProvider) UserService() primary.UserService {
	if s.userService == nil {
		userLogger, err := logger.Named("user")
		if err != nil {
			panic(fmt.Errorf("failed to create user logger: %w", err))
		}

		s.userService = service.NewUserService(userLogger, s.UserRepo())
	}

	return s.userService
}

func (s *serviceProvider) StatsService() primary.StatsService {
	if s.statsService == nil {
		s.statsService = service.NewStatsService(
			s.UserRepo(),
			s.MembershipRepo(),
			s.ApplicationRepo(),
			s.EventRepo(),
		)
	}

	return s.statsService
}

func (s *serviceProvider) ClubService() primary.ClubService {
	if s.clubService == nil {
		clubLogger, err := logger.Named("club")
		if err != nil {
			panic(fmt.Errorf("failed to create club logger: %w", err))
		}

		s.clubService = service.NewClubService(clubLogger, s.ClubRepo())
	}

	return s.clubService
}

func (s *serviceProvider) CategoryService() primary.CategoryService {
	if s.categoryService == nil {
		s.categoryService = service.NewCategoryService(s.CategoryRepo())
	}

	return s.categoryService
}

func (s *serviceProvider) MembershipService() primary.MembershipService {
	if s.membershipService == nil {
		membershipLogger, err := logger.Named("membership")
		if err != nil {
			panic(fmt.Errorf("failed to create membership logger: %w", err))
		}

		s.membershipService = service.NewMembershipService(membershipLogger, s.MembershipRepo())
	}

	return s.membershipService
}

func (s *serviceProvider) ApplicationService() primary.ApplicationService {
	if s.applicationService == nil {
		applicationLogger, err := logger.Named("application")
		if err != nil {
			panic(fmt.Errorf("failed to create application logger: %w", err))
		}

		s.applicationService = service.NewApplicationService(
			applicationLogger,
			s.ApplicationRepo(),
			s.UserRepo(),
			s.ClubRepo(),
			s.MembershipRepo(),
		)
	}

	return s.applicationService
}

func (s *serviceProvider) AnnouncementService() primary.AnnouncementService {
	if s.announcementService == nil {
		s.announcementService = service.NewAnnouncementService(s.AnnouncementRepo())
	}

	return s.announcementService
}

func (s *serviceProvider) EventService() primary.EventService {
	if s.eventService == nil {
		s.eventService = service.NewEventService(s.EventRepo())
	}

	return s.eventService
}

func (s *serviceProvider) AuthService() primary.AuthService {
	if s.authService == nil {
		authLogger, err := logger.Named("auth")
		if err != nil {
			panic(fmt.Errorf("failed to create auth logger: %w", err))
		}

		s.authService = service.NewAuthService(
			authLogger,
			s.UserRepo(),
			s.ClubRepo(),
			s.RedisClient().Sessions,
			s.cfg.Session.TTL(),
		)
	}

	return s.authService
}

// HTTP layer

func (s *serviceProvider) AuthHandler() *auth.Handler {
	if s.authHandler == nil {
		authLogger, err := logger.Named("http-auth")
		if err != nil {
			panic(fmt.Errorf("failed to create http auth logger: %w", err))
		}

		s.authHandler = auth.New(
			s.AuthService(),
			s.UserService(),
			s.ClubService(),
			s.cfg.Session.TTL(),
			authLogger,
		)
	}
	return s.authHandler
}

func (s *serviceProvider) StudentHandler() *student.Handler {
	if s.studentHandler == nil {
		studentLogger, err := logger.Named("http-student")
		if err != nil {
			panic(fmt.Errorf("failed to create http student logger: %w", err))
		}

		s.studentHandler = student.New(
			s.ClubService(),
			s.CategoryService(),
			s.ApplicationService(),
			s.StatsService(),
			s.UserService(),
			s.AnnouncementService(),
			s.EventService(),
			studentLogger,
		)
	}
	return s.studentHandler
}

func (s *serviceProvider) ClubAdminHandler() *clubadmin.Handler {
	if s.clubAdminHandler == nil {
		clubAdminLogger, err := logger.Named("http-club-admin")
		if err != nil {
			panic(fmt.Errorf("failed to create http club admin logger: %w", err))
		}

		s.clubAdminHandler = clubadmin.New(
			s.ClubService(),
			s.ApplicationService(),
			s.MembershipService(),
			s.AnnouncementService(),
			s.EventService(),
			clubAdminLogger,
		)
	}
	return s.clubAdminHandler
}

func (s *serviceProvider) AdminHandler() *admin.Handler {
	if s.adminHandler == nil {
		adminLogger, err := logger.Named("http-admin")
		if err != nil {
			panic(fmt.Errorf("failed to create http admin logger: %w", err))
		}

		s.adminHandler = admin.New(s.ClubService(), s.UserService(), adminLogger)
	}
	return s.adminHandler
}

func (s *serviceProvider) MiddlewaresHandler() *middlewares.Handler {
	if s.middlewaresHandler == nil {
		mwLogger, err := logger.Named("http-middlewares")
		if err != nil {
			panic(fmt.Errorf("failed to create http middlewares logger: %w", err))
		}

		s.middlewaresHandler = middlewares.New(s.AuthService(), mwLogger)
	}
	return s.middlewaresHandler
}

func (s *serviceProvider) HTTPServer() *server.Server {
	if s.httpServer == nil {
		serverLogger, err := logger.Named("http-server")
		if err != nil {
			panic(fmt.Errorf("failed to create http server logger: %w", err))
		}

		s.httpServer = server.New(
			s.cfg.HTTP.Addr(),
			s.cfg.HTTP.CORSOrigins(),
			server.Handlers{
				Auth:      s.AuthHandler(),
				Student:   s.StudentHandler(),
				ClubAdmin: s.ClubAdminHandler(),
				Admin:     s.AdminHandler(),
			},
			s.MiddlewaresHandler(),
			serverLogger,
		)
	}
	return s.httpServer
}

// Cfg returns the config
func (s *serviceProvider) Cfg() *config.Config {
	return s.cfg
}
