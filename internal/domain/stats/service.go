package stats

import (
	"context"
	"math"
	"sort"
	"time"

	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
)

const (
	topBreeds    = 5
	topLocations = 10
	trendMonths  = 6
)

// Bucket es un valor agregado con su cantidad.
type Bucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

type Summary struct {
	TotalPets      int `json:"totalPets"`
	TotalUsers     int `json:"totalUsers"`
	TotalAdoptions int `json:"totalAdoptions"`
	PetsAvailable  int `json:"petsAvailable"`
	PetsAdopted    int `json:"petsAdopted"`
	AdoptionRate   int `json:"adoptionRate"` // porcentaje entero
}

type Distributions struct {
	Species       []Bucket `json:"species"`
	Health        []Bucket `json:"health"`
	Age           []Bucket `json:"age"`
	Breeds        []Bucket `json:"breeds"`
	Locations     []Bucket `json:"locations"`
	Personalities []Bucket `json:"personalities"`
}

type Trends struct {
	AdoptionsByMonth []MonthCount `json:"adoptionsByMonth"`
}

type Dashboard struct {
	Summary       Summary       `json:"summary"`
	Distributions Distributions `json:"distributions"`
	Trends        Trends        `json:"trends"`
	LastUpdated   time.Time     `json:"lastUpdated"`
}

type Service struct {
	pets      pets.Repository
	users     users.Repository
	adoptions adoptions.Repository
	now       func() time.Time
}

func NewService(p pets.Repository, u users.Repository, a adoptions.Repository) *Service {
	return &Service{
		pets:      p,
		users:     u,
		adoptions: a,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Dashboard calcula las estadísticas del refugio sobre el contenido actual del store.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	allPets, err := s.pets.List(ctx, pets.ListFilter{})
	if err != nil {
		return Dashboard{}, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	allAdoptions, err := s.adoptions.List(ctx, adoptions.ListFilter{})
	if err != nil {
		return Dashboard{}, err
	}
	bySpecies, err := s.pets.CountBySpecies(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	now := s.now()

	sum := Summary{
		TotalPets:      len(allPets),
		TotalUsers:     totalUsers,
		TotalAdoptions: len(allAdoptions),
	}

	health := map[string]int{}
	ages := map[string]int{}
	breeds := map[string]int{}
	cities := map[string]int{}
	traits := map[string]int{}

	for _, p := range allPets {
		switch p.AdoptionStatus {
		case pets.AdoptionAvailable:
			sum.PetsAvailable++
		case pets.AdoptionAdopted:
			sum.PetsAdopted++
		}

		health[string(p.HealthStatus)]++
		ages[pets.AgeRange(p.Age)]++
		if p.Breed != "" {
			breeds[p.Breed]++
		}
		cities[p.Location.City]++
		for _, t := range p.Personality {
			traits[string(t)]++
		}
	}

	if sum.TotalPets > 0 {
		sum.AdoptionRate = int(math.Round(float64(sum.PetsAdopted) / float64(sum.TotalPets) * 100))
	}

	species := make([]Bucket, 0, len(bySpecies))
	for _, c := range bySpecies {
		species = append(species, Bucket{Value: string(c.Species), Count: c.Count})
	}

	return Dashboard{
		Summary: sum,
		Distributions: Distributions{
			Species:       species,
			Health:        toBuckets(health, 0),
			Age:           toBuckets(ages, 0),
			Breeds:        toBuckets(breeds, topBreeds),
			Locations:     toBuckets(cities, topLocations),
			Personalities: toBuckets(traits, 0),
		},
		Trends: Trends{
			AdoptionsByMonth: adoptionsByMonth(allAdoptions, now.AddDate(0, -trendMonths, 0)),
		},
		LastUpdated: now,
	}, nil
}

// Search aplica el filtro avanzado, más recientes primero.
func (s *Service) Search(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	filter.NewestFirst = true
	return s.pets.List(ctx, filter)
}

// toBuckets ordena por cantidad desc y valor asc. limit <= 0 = sin límite.
func toBuckets(m map[string]int, limit int) []Bucket {
	out := make([]Bucket, 0, len(m))
	for v, c := range m {
		out = append(out, Bucket{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func adoptionsByMonth(items []adoptions.Adoption, since time.Time) []MonthCount {
	type ym struct{ year, month int }
	counts := map[ym]int{}
	for _, a := range items {
		if a.CreatedAt.Before(since) {
			continue
		}
		counts[ym{a.CreatedAt.Year(), int(a.CreatedAt.Month())}]++
	}

	out := make([]MonthCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, MonthCount{Year: k.year, Month: k.month, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}
