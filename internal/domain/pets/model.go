package pets

import "time"

// Species define las especies que acepta el modelo.
// El generador de datos mock usa solo un subconjunto (ver mocking.GeneratedSpecies).
type Species string

const (
	SpeciesPerro      Species = "perro"
	SpeciesGato       Species = "gato"
	SpeciesAve        Species = "ave"
	SpeciesPez        Species = "pez"
	SpeciesHamster    Species = "hamster"
	SpeciesConejo     Species = "conejo"
	SpeciesTortuga    Species = "tortuga"
	SpeciesIguana     Species = "iguana"
	SpeciesHuron      Species = "hurón"
	SpeciesChinchilla Species = "chinchilla"
	SpeciesSerpiente  Species = "serpiente"
	SpeciesGecko      Species = "gecko"
	SpeciesCobayo     Species = "cobayo"
	SpeciesRata       Species = "rata"
	SpeciesRaton      Species = "ratón"
	SpeciesAxolote    Species = "axolote"
	SpeciesReptil     Species = "reptil"
	SpeciesExotico    Species = "exotico"
)

var allSpecies = []Species{
	SpeciesPerro, SpeciesGato, SpeciesAve, SpeciesPez, SpeciesHamster, SpeciesConejo,
	SpeciesTortuga, SpeciesIguana, SpeciesHuron, SpeciesChinchilla, SpeciesSerpiente,
	SpeciesGecko, SpeciesCobayo, SpeciesRata, SpeciesRaton, SpeciesAxolote,
	SpeciesReptil, SpeciesExotico,
}

// AllSpecies devuelve una copia del enum completo.
func AllSpecies() []Species {
	out := make([]Species, len(allSpecies))
	copy(out, allSpecies)
	return out
}

func (s Species) Valid() bool {
	for _, v := range allSpecies {
		if v == s {
			return true
		}
	}
	return false
}

// Size define el tamaño de la mascota.
// @Enum pequeño, mediano, grande, extra grande
type Size string

const (
	SizeSmall  Size = "pequeño"
	SizeMedium Size = "mediano"
	SizeLarge  Size = "grande"
	SizeXLarge Size = "extra grande"
)

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeXLarge:
		return true
	}
	return false
}

type HealthStatus string

const (
	HealthExcellent   HealthStatus = "excelente"
	HealthGood        HealthStatus = "bueno"
	HealthFair        HealthStatus = "regular"
	HealthSpecialCare HealthStatus = "necesita cuidados especiales"
)

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthExcellent, HealthGood, HealthFair, HealthSpecialCare:
		return true
	}
	return false
}

type AdoptionStatus string

const (
	AdoptionAvailable   AdoptionStatus = "disponible"
	AdoptionInProcess   AdoptionStatus = "en proceso"
	AdoptionAdopted     AdoptionStatus = "adoptado"
	AdoptionUnavailable AdoptionStatus = "no disponible"
)

func (a AdoptionStatus) Valid() bool {
	switch a {
	case AdoptionAvailable, AdoptionInProcess, AdoptionAdopted, AdoptionUnavailable:
		return true
	}
	return false
}

type Personality string

const (
	PersonalityAffectionate Personality = "cariñoso"
	PersonalityPlayful      Personality = "juguetón"
	PersonalityCalm         Personality = "tranquilo"
	PersonalityEnergetic    Personality = "energético"
	PersonalityProtective   Personality = "protector"
	PersonalityIndependent  Personality = "independiente"
	PersonalitySociable     Personality = "sociable"
	PersonalityShy          Personality = "tímido"
	PersonalityCurious      Personality = "curioso"
	PersonalityObedient     Personality = "obediente"
	PersonalityNocturnal    Personality = "nocturno"
)

// Location: ciudad y provincia no se validan entre sí.
type Location struct {
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
}

const DefaultCountry = "Argentina"

// MedicalRecord es una entrada del historial médico.
type MedicalRecord struct {
	Date         time.Time `json:"date"`
	Treatment    string    `json:"treatment"`
	Veterinarian string    `json:"veterinarian"`
	Notes        string    `json:"notes"`
	Cost         int       `json:"cost"`
}

type Characteristics struct {
	EnergyLevel    string `json:"energyLevel"`
	GroomingNeeds  string `json:"groomingNeeds"`
	Trainability   string `json:"trainability"`
	LifeExpectancy string `json:"lifeExpectancy"`
}

// Límites del modelo.
const (
	MinAge    = 0.0
	MaxAge    = 30.0
	MinWeight = 0.1
	MaxWeight = 100.0
)

// Pet representa una mascota del refugio.
type Pet struct {
	ID string

	Name        string
	Species     Species
	Breed       string
	Age         float64 // años
	Color       string
	Size        Size
	Weight      float64 // kg
	Description string
	Personality []Personality

	IsVaccinated bool
	IsNeutered   bool
	GoodWithKids bool
	GoodWithPets bool

	HealthStatus   HealthStatus
	AdoptionStatus AdoptionStatus

	Location Location

	// OwnerID vacío = sin dueño (disponible para adopción).
	OwnerID string

	MedicalHistory  []MedicalRecord
	MicrochipID     string // único si no está vacío
	SpecialNeeds    string
	ImageURL        string
	RescueDate      *time.Time
	Characteristics *Characteristics

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgeDescription se deriva de Age; no se persiste.
func (p Pet) AgeDescription() string {
	return AgeRange(p.Age)
}

// AgeRange agrupa una edad en los rangos usados por el dashboard.
func AgeRange(age float64) string {
	switch {
	case age < 1:
		return "Cachorro/Bebé (0-1 año)"
	case age < 3:
		return "Joven (1-3 años)"
	case age < 7:
		return "Adulto (3-7 años)"
	default:
		return "Senior (7+ años)"
	}
}
