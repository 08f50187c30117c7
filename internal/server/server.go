package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"github.com/soundvault/soundvault/internal/config"
	"github.com/soundvault/soundvault/internal/database"
	"github.com/soundvault/soundvault/internal/filestorage"
	"github.com/soundvault/soundvault/internal/identity"
	"github.com/soundvault/soundvault/internal/queue"
	"github.com/soundvault/soundvault/internal/usecase"
)

// Service is the core surface the HTTP adapter binds to.
type Service interface {
	Health() map[string]string
	Close() error

	CreateTrack(context.Context, usecase.Track, usecase.File) (usecase.Track, error)
	ListTracks(context.Context) ([]usecase.Track, error)
	GetTrackByID(context.Context, uuid.UUID) (usecase.Track, error)
	UpdateTrack(context.Context, usecase.Track, usecase.File) (usecase.Track, error)
	DeleteTrack(context.Context, uuid.UUID) error
	UploadFile(context.Context, usecase.File) (string, error)
	RequestReconcile(context.Context) error

	RegisterCustomer(context.Context, usecase.RegisterCustomer) (usecase.Customer, error)
	ListCustomers(context.Context) ([]usecase.Customer, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
}

type Server struct {
	port int

	server    Service
	validator *validator.Validate
}

func New() (*http.Server, error) {
	repo, err := database.New()
	if err != nil {
		return nil, err
	}

	fsp, err := filestorage.FromEnv(context.Background())
	if err != nil {
		return nil, err
	}

	idp, err := identity.NewOIDCProvider(identity.Config{
		ServerURL:    os.Getenv(config.ENV_KEY_OIDC_SERVER_URL),
		Realm:        os.Getenv(config.ENV_KEY_OIDC_REALM),
		ClientID:     os.Getenv(config.ENV_KEY_OIDC_CLIENT_ID),
		ClientSecret: os.Getenv(config.ENV_KEY_OIDC_CLIENT_SECRET),
	})
	if err != nil {
		return nil, err
	}

	tasks := queue.NewClient(
		fmt.Sprintf("%s:%s", os.Getenv(config.ENV_KEY_REDIS_HOST), os.Getenv(config.ENV_KEY_REDIS_PORT)),
		os.Getenv(config.ENV_KEY_REDIS_PASSWORD),
	)

	sv := usecase.New(repo, fsp, idp, tasks)

	port, _ := strconv.Atoi(os.Getenv(config.ENV_KEY_PORT))
	s := &Server{
		port:      port,
		server:    sv,
		validator: validator.New(),
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}, nil
}
