// Command seed repuebla un store con datos mock.
//
// Con -api dispara POST /api/mocks/seed sobre una API corriendo; si además se
// pasan -generate-users o -generate-pets, agrega datos con /api/mocks/generateData
// en vez de repoblar. Sin -api se conecta directo a Postgres con -dsn (o DB_DSN).
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/config"
	"pet-adoption-api/internal/mocking"
	"pet-adoption-api/internal/platform/httpclient"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := cfg.Logger().With(map[string]any{"cmd": "seed"})

	var (
		dsn        = flag.String("dsn", cfg.DBDSN, "DSN de Postgres (default DB_DSN)")
		apiURL     = flag.String("api", "", "URL base de una API corriendo; si se define no se usa -dsn")
		randSeed   = flag.Uint64("rand-seed", 0, "semilla del generador (0 = aleatoria)")
		bcryptCost = flag.Int("bcrypt-cost", cfg.BcryptCost, "costo bcrypt del password mock")
		timeout    = flag.Duration("timeout", time.Minute, "timeout total")
		genUsers   = flag.Int("generate-users", 0, "con -api: usuarios a generar e insertar")
		genPets    = flag.Int("generate-pets", 0, "con -api: mascotas a generar e insertar")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *genUsers < 0 || *genPets < 0 {
		log.Error("-generate-users y -generate-pets deben ser >= 0", nil)
		os.Exit(2)
	}
	generate := *genUsers > 0 || *genPets > 0
	if generate && *apiURL == "" {
		log.Error("-generate-users/-generate-pets requieren -api", nil)
		os.Exit(2)
	}

	if generate {
		out, err := generateRemote(ctx, *apiURL, *timeout, *genUsers, *genPets)
		if err != nil {
			log.Error("generate data failed", map[string]any{"error": err})
			os.Exit(1)
		}
		log.Info("generate data done", map[string]any{"users": out.Users, "pets": out.Pets})
		return
	}

	var res seed.Result
	switch {
	case *apiURL != "":
		res, err = seedRemote(ctx, *apiURL, *timeout)
	case *dsn != "":
		res, err = seedDirect(ctx, *dsn, *randSeed, *bcryptCost, log)
	default:
		log.Error("se requiere -api o -dsn (o DB_DSN)", nil)
		os.Exit(2)
	}
	if err != nil {
		log.Error("seed failed", map[string]any{"error": err})
		os.Exit(1)
	}

	log.Info("seed done", map[string]any{
		"users":     res.InsertedUsers,
		"pets":      res.InsertedPets,
		"adoptions": res.InsertedAdoptions,
		"fallback":  res.Fallback,
	})
}

func seedRemote(ctx context.Context, apiURL string, timeout time.Duration) (seed.Result, error) {
	c, err := httpclient.NewWithBaseURL(apiURL, timeout)
	if err != nil {
		return seed.Result{}, err
	}
	return c.TriggerSeed(ctx)
}

func generateRemote(ctx context.Context, apiURL string, timeout time.Duration, users, pets int) (httpclient.GenerateDataResult, error) {
	c, err := httpclient.NewWithBaseURL(apiURL, timeout)
	if err != nil {
		return httpclient.GenerateDataResult{}, err
	}
	return c.GenerateData(ctx, users, pets)
}

func seedDirect(ctx context.Context, dsn string, randSeed uint64, cost int, log logger.Logger) (seed.Result, error) {
	db, err := postgres.Open(dsn)
	if err != nil {
		return seed.Result{}, err
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return seed.Result{}, err
	}

	src := mocking.NewRandomSource()
	if randSeed != 0 {
		src = mocking.NewSource(randSeed)
	}

	s := seed.New(
		postgres.NewUsersRepo(db),
		postgres.NewPetsRepo(db),
		postgres.NewAdoptionsRepo(db),
		mocking.New(src, mocking.Options{PasswordCost: cost}),
		log,
	)
	return s.Run(ctx)
}
