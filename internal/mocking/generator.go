package mocking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPool     = errors.New("mocking: empty id pool")
	ErrPoolExhausted = errors.New("mocking: not enough distinct user/pet pairs")
)

// DefaultPassword es la contraseña en claro de todos los usuarios generados.
const DefaultPassword = "coder123"

// GeneratedSpecies es el subconjunto de especies que produce el generador.
var GeneratedSpecies = []pets.Species{pets.SpeciesPerro, pets.SpeciesGato, pets.SpeciesAve, pets.SpeciesConejo}

var generatedSizes = []pets.Size{pets.SizeSmall, pets.SizeMedium, pets.SizeLarge}

var HealthStatusDistribution = Distribution[pets.HealthStatus]{
	{Value: pets.HealthExcellent, Weight: 2},
	{Value: pets.HealthGood, Weight: 2},
	{Value: pets.HealthFair, Weight: 1},
}

var AdoptionStatusDistribution = Distribution[pets.AdoptionStatus]{
	{Value: pets.AdoptionAvailable, Weight: 3},
	{Value: pets.AdoptionInProcess, Weight: 1},
}

// Probabilidades de los campos opcionales y flags de mascota.
const (
	adminProbability        = 0.3
	vaccinatedProbability   = 0.7
	neuteredProbability     = 0.6
	goodWithKidsProbability = 0.8
	goodWithPetsProbability = 0.7
	microchipProbability    = 0.7
	medicalProbability      = 0.4
	specialNeedsProbability = 0.1
)

var adoptionNotes = map[adoptions.Status]string{
	adoptions.StatusPending:   "Solicitud de adopción en proceso",
	adoptions.StatusApproved:  "Solicitud de adopción aprobada",
	adoptions.StatusRejected:  "Solicitud de adopción rechazada",
	adoptions.StatusCompleted: "Solicitud de adopción completada",
}

type Options struct {
	// PasswordCost es el costo bcrypt del hash de DefaultPassword.
	PasswordCost int
	Now          func() time.Time
}

// Generator no es seguro para uso concurrente: cada goroutine usa el suyo.
type Generator struct {
	r    Source
	now  func() time.Time
	cost int

	passwordHash string
}

func New(r Source, opts Options) *Generator {
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	cost := opts.PasswordCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Generator{r: r, now: now, cost: cost}
}

// hash se calcula una sola vez por generador.
func (g *Generator) hash() string {
	if g.passwordHash == "" {
		b, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), g.cost)
		if err != nil {
			// solo falla con un costo fuera de rango, ya acotado en New
			panic(fmt.Sprintf("mocking: bcrypt: %v", err))
		}
		g.passwordHash = string(b)
	}
	return g.passwordHash
}

// User genera un usuario sin ID.
func (g *Generator) User() users.User {
	first := Pick(g.r, firstNames)
	last := Pick(g.r, lastNames)

	role := users.RoleUser
	if Chance(g.r, adminProbability) {
		role = users.RoleAdmin
	}

	return users.User{
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(fmt.Sprintf("%s.%s%d@email.com", first, last, g.r.IntN(999))),
		Password:  g.hash(),
		Role:      role,
		Pets:      []string{},
		CreatedAt: Within(g.r, g.now(), 365*24*time.Hour),
		UpdatedAt: g.now(),
	}
}

func (g *Generator) Users(n int) []users.User {
	out := make([]users.User, 0, max(n, 0))
	for range max(n, 0) {
		out = append(out, g.User())
	}
	return out
}

// Pet genera una mascota sin ID. ownerID vacío = sin dueño.
func (g *Generator) Pet(ownerID string) pets.Pet {
	now := g.now()

	species := Pick(g.r, GeneratedSpecies)
	table := speciesTables[species]
	size := Pick(g.r, generatedSizes)

	p := pets.Pet{
		Name:        Pick(g.r, table.Names),
		Species:     species,
		Breed:       Pick(g.r, table.Breeds),
		Color:       Pick(g.r, table.Colors),
		Age:         Age(g.r, species),
		Size:        size,
		Weight:      Weight(g.r, species, size),
		Personality: PickMany(g.r, table.Personalities, 1+g.r.IntN(3)),

		IsVaccinated: Chance(g.r, vaccinatedProbability),
		IsNeutered:   Chance(g.r, neuteredProbability),
		GoodWithKids: Chance(g.r, goodWithKidsProbability),
		GoodWithPets: Chance(g.r, goodWithPetsProbability),

		HealthStatus:   HealthStatusDistribution.Draw(g.r),
		AdoptionStatus: AdoptionStatusDistribution.Draw(g.r),

		Location: pets.Location{
			City:     Pick(g.r, Cities),
			Province: Pick(g.r, Provinces),
			Country:  pets.DefaultCountry,
		},
		OwnerID:  ownerID,
		ImageURL: pets.DefaultImageURL,

		CreatedAt: Within(g.r, now, 180*24*time.Hour),
		UpdatedAt: now,
	}

	p.Description = Description(g.r, p)
	p.Characteristics = Characteristics(g.r, species)

	if Chance(g.r, microchipProbability) {
		p.MicrochipID = MicrochipID(g.r)
	}

	rescued := Within(g.r, now, 365*24*time.Hour)
	p.RescueDate = &rescued

	if Chance(g.r, medicalProbability) {
		p.MedicalHistory = []pets.MedicalRecord{{
			Date:         Within(g.r, now, 90*24*time.Hour),
			Treatment:    Pick(g.r, treatments),
			Veterinarian: Pick(g.r, veterinarians),
			Notes:        "Tratamiento exitoso, sin complicaciones",
			Cost:         1000 + g.r.IntN(5000),
		}}
	}

	if Chance(g.r, specialNeedsProbability) {
		p.SpecialNeeds = Pick(g.r, specialNeeds)
	}

	return p
}

// Pets genera n mascotas, todas con el mismo ownerID (o ninguno).
func (g *Generator) Pets(n int, ownerID string) []pets.Pet {
	out := make([]pets.Pet, 0, max(n, 0))
	for range max(n, 0) {
		out = append(out, g.Pet(ownerID))
	}
	return out
}

// Adoption genera una adopción para el par dado.
func (g *Generator) Adoption(userID, petID string) adoptions.Adoption {
	now := g.now()
	status := Pick(g.r, adoptions.AllStatuses())

	a := adoptions.Adoption{
		UserID:    userID,
		PetID:     petID,
		Status:    status,
		Notes:     adoptionNotes[status],
		CreatedAt: Within(g.r, now, 30*24*time.Hour),
		UpdatedAt: now,
	}
	if status == adoptions.StatusCompleted {
		d := Within(g.r, now, 90*24*time.Hour)
		a.AdoptionDate = &d
	}
	return a
}

// Adoptions genera n adopciones sin repetir el par (usuario, mascota).
func (g *Generator) Adoptions(n int, userIDs, petIDs []string) ([]adoptions.Adoption, error) {
	if n <= 0 {
		return []adoptions.Adoption{}, nil
	}

	userIDs = distinct(userIDs)
	petIDs = distinct(petIDs)
	if len(userIDs) == 0 || len(petIDs) == 0 {
		return nil, ErrEmptyPool
	}

	total := len(userIDs) * len(petIDs)
	if n > total {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrPoolExhausted, n, total)
	}

	out := make([]adoptions.Adoption, 0, n)

	// Pool denso: permutar todos los pares evita reintentos largos.
	if 2*n > total {
		for _, k := range g.r.Perm(total)[:n] {
			out = append(out, g.Adoption(userIDs[k/len(petIDs)], petIDs[k%len(petIDs)]))
		}
		return out, nil
	}

	seen := make(map[string]struct{}, n)
	for len(out) < n {
		userID := Pick(g.r, userIDs)
		petID := Pick(g.r, petIDs)
		key := userID + "|" + petID
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g.Adoption(userID, petID))
	}
	return out, nil
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Dataset es un conjunto mínimo de registros para sembrar el store.
type Dataset struct {
	Users []users.User
	Pets  []pets.Pet
}

// Fallback devuelve exactamente un usuario y una mascota con valores fijos.
func (g *Generator) Fallback() Dataset {
	now := g.now()
	return Dataset{
		Users: []users.User{{
			FirstName: "María",
			LastName:  "González",
			Email:     "maria.gonzalez@email.com",
			Password:  g.hash(),
			Role:      users.RoleAdmin,
			Pets:      []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}},
		Pets: []pets.Pet{{
			Name:           "Luna",
			Species:        pets.SpeciesPerro,
			Breed:          "Labrador",
			Age:            3,
			Color:          "dorado",
			Size:           pets.SizeLarge,
			Weight:         28.5,
			Description:    "Luna es una perra muy cariñosa que busca una familia amorosa.",
			Personality:    []pets.Personality{pets.PersonalityAffectionate, pets.PersonalityPlayful},
			IsVaccinated:   true,
			IsNeutered:     true,
			GoodWithKids:   true,
			GoodWithPets:   true,
			HealthStatus:   pets.HealthExcellent,
			AdoptionStatus: pets.AdoptionAvailable,
			Location: pets.Location{
				City:     "Buenos Aires",
				Province: "Buenos Aires",
				Country:  pets.DefaultCountry,
			},
			ImageURL:  pets.DefaultImageURL,
			CreatedAt: now,
			UpdatedAt: now,
		}},
	}
}
