package router

import (
	"context"
	"database/sql"
	"net/http"

	mem "pet-adoption-api/internal/adapters/storage/memory"
	pg "pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/mocks"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/stats"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/mocking"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/seed"

	_ "pet-adoption-api/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// BcryptCost para passwords de usuarios (API y generador). 0 = bcrypt.DefaultCost.
	BcryptCost int

	// RandSeed fija la fuente del seeder. 0 = no determinístico.
	RandSeed uint64
}

// App expone el handler y el seeder (cmd/api lo usa para SEED_ON_START).
type App struct {
	Handler http.Handler
	Seeder  *seed.Seeder
}

func NewRouter(opts Options) http.Handler {
	return New(opts).Handler
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var (
		userRepo     users.Repository
		petRepo      pets.Repository
		adoptionRepo adoptions.Repository
	)

	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		adoptionRepo = pg.NewAdoptionsRepo(opts.DB)
	} else {
		userRepo = mem.NewUserRepo()
		petRepo = mem.NewPetRepo()
		adoptionRepo = mem.NewAdoptionRepo()
	}

	owners := ownerLookup(userRepo)

	// Services por módulo
	usersSvc := users.NewService(userRepo, opts.BcryptCost)
	petsSvc := pets.NewService(petRepo, owners)
	adoptionsSvc := adoptions.NewService(adoptionRepo, adoptions.Lookups{
		User: userSummaryLookup(userRepo),
		Pet:  petSummaryLookup(petRepo),
	})
	statsSvc := stats.NewService(petRepo, userRepo, adoptionRepo)

	src := mocking.NewRandomSource()
	if opts.RandSeed != 0 {
		src = mocking.NewSource(opts.RandSeed)
	}
	seeder := seed.New(userRepo, petRepo, adoptionRepo,
		mocking.New(src, mocking.Options{PasswordCost: opts.BcryptCost}),
		log,
	)
	mocksSvc := mocks.NewService(userRepo, petRepo, seeder, mocks.Options{PasswordCost: opts.BcryptCost})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc)
		pets.RegisterRoutes(api, petsSvc, owners)
		adoptions.RegisterRoutes(api, adoptionsSvc)
		stats.RegisterRoutes(api, statsSvc, owners)
		mocks.RegisterRoutes(api, mocksSvc)
	})

	return &App{Handler: r, Seeder: seeder}
}

func ownerLookup(repo users.Repository) pets.OwnerLookup {
	return func(ctx context.Context, userID string) (pets.Owner, bool) {
		u, err := repo.GetByID(ctx, userID)
		if err != nil {
			return pets.Owner{}, false
		}
		return pets.Owner{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}, true
	}
}

func userSummaryLookup(repo users.Repository) func(context.Context, string) (adoptions.UserSummary, bool) {
	return func(ctx context.Context, id string) (adoptions.UserSummary, bool) {
		u, err := repo.GetByID(ctx, id)
		if err != nil {
			return adoptions.UserSummary{}, false
		}
		return adoptions.UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}, true
	}
}

func petSummaryLookup(repo pets.Repository) func(context.Context, string) (adoptions.PetSummary, bool) {
	return func(ctx context.Context, id string) (adoptions.PetSummary, bool) {
		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return adoptions.PetSummary{}, false
		}
		return adoptions.PetSummary{ID: p.ID, Name: p.Name, Species: string(p.Species)}, true
	}
}
