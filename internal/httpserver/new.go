package httpserver

import (
	"database/sql"
	"errors"

	"reportlog-srv/config"
	"reportlog-srv/internal/report"
	"reportlog-srv/pkg/jwt"
	"reportlog-srv/pkg/kafka"
	"reportlog-srv/pkg/log"
	"reportlog-srv/pkg/minio"
	"reportlog-srv/pkg/rabbitmq"
	pkgRedis "reportlog-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Messaging & Storage Configuration
	redisClient     pkgRedis.IRedis
	kafkaProducer   kafka.IProducer
	rabbitPublisher rabbitmq.IPublisher
	minioClient     minio.MinIO

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   *jwt.Manager
	cookieConfig config.CookieConfig

	// Shared usecases across domains
	reportUC report.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Messaging & Storage Configuration
	RedisClient     pkgRedis.IRedis
	KafkaProducer   kafka.IProducer
	RabbitPublisher rabbitmq.IPublisher
	MinIOClient     minio.MinIO

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   *jwt.Manager
	CookieConfig config.CookieConfig
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Messaging & Storage Configuration
		redisClient:     cfg.RedisClient,
		kafkaProducer:   cfg.KafkaProducer,
		rabbitPublisher: cfg.RabbitPublisher,
		minioClient:     cfg.MinIOClient,

		// Authentication & Security Configuration
		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Messaging and storage clients are optional; domains degrade to
	// synchronous-only behavior without them.

	return nil
}
