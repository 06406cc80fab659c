package app

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/ptcgpocket/companion/internal/config"
	"github.com/ptcgpocket/companion/internal/domain/ability"
	"github.com/ptcgpocket/companion/internal/domain/card"
	"github.com/ptcgpocket/companion/internal/domain/deck"
	"github.com/ptcgpocket/companion/internal/domain/game"
	"github.com/ptcgpocket/companion/internal/domain/user"
	"github.com/ptcgpocket/companion/internal/infrastructure/account/introspect"
	cacherepo "github.com/ptcgpocket/companion/internal/infrastructure/repository/cache"
	"github.com/ptcgpocket/companion/internal/infrastructure/repository/memory"
	"github.com/ptcgpocket/companion/internal/infrastructure/repository/postgres"
	"github.com/ptcgpocket/companion/internal/interfaces/httpapi"
	basecache "github.com/ptcgpocket/companion/internal/platform/cache"
	idgen "github.com/ptcgpocket/companion/internal/platform/id"
	"github.com/ptcgpocket/companion/internal/platform/logging"
	"github.com/ptcgpocket/companion/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router. The
// returned cleanup closes the database pool and is nil-safe to call even
// when the in-memory repositories are active.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		cardRepo    card.Repository
		abilityRepo ability.Repository
		deckRepo    deck.Repository
		gameRepo    game.Repository
		userRepo    user.Repository
		cleanup     = func() error { return nil }
	)

	if strings.TrimSpace(cfg.DBURL) != "" {
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		cardRepo = postgres.NewCardRepository(db)
		abilityRepo = postgres.NewAbilityRepository(db)
		deckRepo = postgres.NewDeckRepository(db)
		gameRepo = postgres.NewGameRepository(db)
		userRepo = postgres.NewUserRepository(db)
		cleanup = db.Close
		logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		cardRepo = memory.NewCardRepository(memory.SeedCards())
		abilityRepo = memory.NewAbilityRepository(memory.SeedAbilities())
		deckRepo = memory.NewDeckRepository()
		gameRepo = memory.NewGameRepository()
		userRepo = memory.NewUserRepository(memory.SeedUsers())
		logger.Warn("DB_URL not set, using in-memory repositories with seed data")
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		cardRepo = cacherepo.NewCardRepository(cardRepo, store)
		abilityRepo = cacherepo.NewAbilityRepository(abilityRepo, store)
	}

	ids := idgen.NewUUIDGenerator()

	cardSvc := usecase.NewCardService(cardRepo, abilityRepo, ids, logger)
	abilitySvc := usecase.NewAbilityService(abilityRepo, ids, logger)
	deckSvc := usecase.NewDeckService(deckRepo, cardRepo, userRepo, deck.DefaultRules(), ids, logger)
	gameSvc := usecase.NewGameService(gameRepo, deckRepo, userRepo, ids, logger)
	userSvc := usecase.NewUserService(userRepo, ids, logger)

	verifier := introspect.NewClient(
		&http.Client{Timeout: cfg.AuthTimeout},
		cfg.AuthBaseURL,
		cfg.AuthIntrospectPath,
		cfg.AuthCircuitBreaker,
		logger,
	)

	handler := httpapi.NewHandler(cardSvc, abilitySvc, deckSvc, gameSvc, userSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
