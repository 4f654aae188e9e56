package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		PresenceSweepInterval  time.Duration
		PresenceStaleThreshold time.Duration
		EventRelayInterval     time.Duration
		EventRelayBatchSize    int
		EventRelaySettleDelay  time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Log struct {
		Level string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Address        string
		Password       string
		DB             int
		IdempotencyTTL time.Duration
	}

	Auth struct {
		JWTSecret string
		JWTIssuer string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		EventsTopic     string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PickupRequestChanged PickupRequestChanged
	}

	PickupRequestChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Log      Log
		Database Database
		Redis    Redis
		Auth     Auth
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase только секция POSTGRES_*, для утилит вроде cmd/migrate.
func LoadDatabase() (*Database, error) {
	cfg := databaseFromEnv()
	if err := validateDatabase(&cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg, nil
}

func loadFromEnv() (*Config, error) {
	sweepInterval, err := osGetEnvDuration("BACKGROUND_PRESENCE_SWEEP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	staleThreshold, err := osGetEnvDuration("BACKGROUND_PRESENCE_STALE_THRESHOLD")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	relayInterval, err := osGetEnvDuration("BACKGROUND_EVENT_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	relayBatchSize, err := osGetInt("BACKGROUND_EVENT_RELAY_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	relaySettleDelay, err := osGetEnvDuration("BACKGROUND_EVENT_RELAY_SETTLE_DELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PICKUP_REQUEST_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	idempotencyTTL, err := osGetEnvDuration("MIDDLEWARE_IDEMPOTENCY_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			PresenceSweepInterval:  sweepInterval,
			PresenceStaleThreshold: staleThreshold,
			EventRelayInterval:     relayInterval,
			EventRelayBatchSize:    relayBatchSize,
			EventRelaySettleDelay:  relaySettleDelay,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
		Database: databaseFromEnv(),
		Redis: Redis{
			Address:        os.Getenv("REDIS_ADDRESS"),
			Password:       os.Getenv("REDIS_PASSWORD"),
			DB:             redisDB,
			IdempotencyTTL: idempotencyTTL,
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			JWTIssuer: os.Getenv("AUTH_JWT_ISSUER"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			EventsTopic:     os.Getenv("KAFKA_EVENTS_TOPIC"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PickupRequestChanged: PickupRequestChanged{
					ProcessTimeout: requestChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.Server.GRPCHealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Redis.Address == "" {
		return errors.New("REDIS_ADDRESS is required")
	}
	if cfg.Redis.IdempotencyTTL == time.Duration(0) {
		cfg.Redis.IdempotencyTTL = 24 * time.Hour
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if cfg.Auth.JWTIssuer == "" {
		return errors.New("AUTH_JWT_ISSUER is required")
	}

	if cfg.Tasks.PresenceSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PRESENCE_SWEEP_INTERVAL is required")
	}
	if cfg.Tasks.PresenceStaleThreshold == time.Duration(0) {
		return errors.New("BACKGROUND_PRESENCE_STALE_THRESHOLD is required")
	}
	if cfg.Tasks.EventRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_EVENT_RELAY_INTERVAL is required")
	}
	if cfg.Tasks.EventRelayBatchSize == 0 {
		cfg.Tasks.EventRelayBatchSize = 100
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.EventsTopic == "" {
		return errors.New("KAFKA_EVENTS_TOPIC is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.PickupRequestChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PICKUP_REQUEST_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func databaseFromEnv() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
