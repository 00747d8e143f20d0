package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-benefit-authorizer/internal/classifier"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/handlers"
	internaljwt "github.com/sbilibin2017/gw-benefit-authorizer/internal/jwt"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/logger"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/middlewares"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/repositories"
	"github.com/sbilibin2017/gw-benefit-authorizer/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-benefit-authorizer/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-benefit-authorizer API
// @version 1.0.0
// @description Microservice for authorizing benefit-card purchases against segmented balances
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		merchantCacheTTL,
		kafkaBroker, kafkaTopic, logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		merchantCacheTTL,
		kafkaBroker, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	merchantCacheTTL int,
	kafkaBroker, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if merchantCacheTTL, err = strconv.Atoi(getEnv("MERCHANT_CACHE_TTL_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "authorizations")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	merchantCacheTTL int,
	kafkaBroker, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for authorization events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBroker),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwt := internaljwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, middlewares.GetTxFromContext)
	walletReadRepo := repositories.NewWalletReadRepository(db, middlewares.GetTxFromContext)
	walletWriteRepo := repositories.NewWalletWriteRepository(db, middlewares.GetTxFromContext)
	txnReadRepo := repositories.NewTransactionReadRepository(db)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	merchantCache := repositories.NewMerchantMCCCacheRepository(rdb, time.Duration(merchantCacheTTL)*time.Second)

	// Initialize classifier with the reference tables
	mccClassifier := classifier.New(classifier.DefaultConfig())

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	authorizerService := services.NewAuthorizerService(walletReadRepo, walletWriteRepo)
	accountService := services.NewAccountService(accountReadRepo, accountWriteRepo, walletWriteRepo)
	walletService := services.NewWalletService(accountReadRepo, walletReadRepo, walletReadRepo, walletWriteRepo, authorizerService)
	transactionService := services.NewTransactionService(
		accountReadRepo, mccClassifier, authorizerService,
		txnWriteRepo, txnReadRepo, merchantCache, kafkaWriter,
	)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	authorizeHandler := handlers.NewAuthorizeHandler(transactionService, false, false)
	authorizeFallbackHandler := handlers.NewAuthorizeHandler(transactionService, false, true)
	l2AuthorizeHandler := handlers.NewAuthorizeHandler(transactionService, true, false)
	l2AuthorizeFallbackHandler := handlers.NewAuthorizeHandler(transactionService, true, true)
	listTransactionsHandler := handlers.NewListTransactionsHandler(transactionService)
	balanceHandler := handlers.NewGetBalanceHandler(walletService)
	createAccountHandler := handlers.NewCreateAccountHandler(accountService)
	getAccountHandler := handlers.NewGetAccountHandler(accountService)
	createWalletHandler := handlers.NewCreateWalletHandler(walletService)
	creditWalletHandler := handlers.NewCreditWalletHandler(walletService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		handlers.RegisterRegisterHandler(r, registerHandler)
		handlers.RegisterLoginHandler(r, loginHandler)

		// Authorization routes, card-network facing. Each attempt runs inside
		// a single database transaction.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			handlers.RegisterAuthorizeHandler(r, authorizeHandler)
			handlers.RegisterAuthorizeWithFallbackHandler(r, authorizeFallbackHandler)
			handlers.RegisterMerchantAwareAuthorizeHandler(r, l2AuthorizeHandler)
			handlers.RegisterMerchantAwareAuthorizeWithFallbackHandler(r, l2AuthorizeFallbackHandler)
		})

		// Protected backoffice routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwt))
			handlers.RegisterListTransactionsHandler(r, listTransactionsHandler)
			handlers.RegisterGetBalanceHandler(r, balanceHandler)
			handlers.RegisterCreateAccountHandler(r, createAccountHandler)
			handlers.RegisterGetAccountHandler(r, getAccountHandler)
			handlers.RegisterCreateWalletHandler(r, createWalletHandler)
			handlers.RegisterCreditWalletHandler(r, creditWalletHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
