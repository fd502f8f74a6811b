package mocking

import (
	"fmt"
	"slices"
	"strings"

	"pet-adoption-api/internal/domain/pets"
)

// speciesTable agrupa los valores plausibles de una categoría de especie.
type speciesTable struct {
	Names         []string
	Breeds        []string
	Colors        []string
	Personalities []pets.Personality
}

var speciesTables = map[pets.Species]speciesTable{
	pets.SpeciesPerro: {
		Names:  []string{"Luna", "Max", "Bella", "Rocky", "Milo", "Lola", "Bruno", "Nina", "Zeus", "Coco", "Toby", "Princesa", "Simón", "Maya", "Chester"},
		Breeds: []string{"Labrador", "Golden Retriever", "Pastor Alemán", "Bulldog Francés", "Beagle", "Boxer", "Dálmata", "Cocker Spaniel", "Mestizo", "Pitbull", "Chihuahua", "Poodle"},
		Colors: []string{"negro", "marrón", "blanco", "dorado", "gris", "manchado", "tricolor", "canela", "chocolate", "crema"},
		Personalities: []pets.Personality{
			pets.PersonalityAffectionate, pets.PersonalityPlayful, pets.PersonalityProtective,
			pets.PersonalityEnergetic, pets.PersonalityObedient,
		},
	},
	pets.SpeciesGato: {
		Names:  []string{"Mishi", "Felix", "Garfield", "Salem", "Nala", "Simba", "Whiskers", "Shadow", "Mittens", "Tiger", "Smokey", "Patches", "Oreo", "Ginger"},
		Breeds: []string{"Persa", "Siamés", "Maine Coon", "Ragdoll", "British Shorthair", "Angora", "Común Europeo", "Mestizo", "Bengalí", "Russian Blue"},
		Colors: []string{"negro", "blanco", "gris", "naranja", "atigrado", "calicó", "siamés", "carey", "plateado"},
		Personalities: []pets.Personality{
			pets.PersonalityIndependent, pets.PersonalityAffectionate, pets.PersonalityPlayful,
			pets.PersonalityCalm, pets.PersonalityCurious,
		},
	},
	pets.SpeciesAve: {
		Names:  []string{"Pico", "Charlie", "Kiwi", "Mango", "Azul", "Canela", "Sunshine", "Pepper", "Ruby", "Oscar"},
		Breeds: []string{"Canario", "Periquito", "Loro", "Cacatúa", "Jilguero", "Diamante Mandarín", "Agapornis", "Ninfa"},
		Colors: []string{"amarillo", "verde", "azul", "rojo", "blanco", "multicolor", "gris"},
		Personalities: []pets.Personality{
			pets.PersonalitySociable, pets.PersonalityCurious, pets.PersonalityPlayful, pets.PersonalityCalm,
		},
	},
	pets.SpeciesConejo: {
		Names:  []string{"Bunny", "Cotton", "Copo", "Nieve", "Pelusa", "Saltarín", "Orejas", "Chocolate", "Caramelo"},
		Breeds: []string{"Holandés", "Cabeza de León", "Mini Lop", "Angora", "Rex", "Gigante de Flandes", "Común"},
		Colors: []string{"blanco", "gris", "negro", "marrón", "manchado", "canela", "chocolate"},
		Personalities: []pets.Personality{
			pets.PersonalityCalm, pets.PersonalityPlayful, pets.PersonalityCurious,
			pets.PersonalityShy, pets.PersonalitySociable,
		},
	},
	pets.SpeciesReptil: {
		Names:  []string{"Spike", "Escamas", "Verde", "Sombra", "Dragón", "Esmeralda", "Jade", "Ruby", "Ámbar"},
		Breeds: []string{"Iguana Verde", "Gecko Leopardo", "Pogona", "Tortuga Rusa", "Serpiente del Maíz", "Gecko Crestado"},
		Colors: []string{"verde", "marrón", "amarillo", "naranja", "manchado", "rayado", "multicolor"},
		Personalities: []pets.Personality{
			pets.PersonalityCalm, pets.PersonalityIndependent, pets.PersonalityCurious, pets.PersonalityShy,
		},
	},
	pets.SpeciesExotico: {
		Names:  []string{"Exo", "Raro", "Único", "Misterio", "Alien", "Cosmos", "Nebula", "Galaxy", "Star"},
		Breeds: []string{"Axolote", "Hurón", "Chinchilla", "Cobayo", "Rata Doméstica", "Araña Chilena", "Gecko"},
		Colors: []string{"rosa", "blanco", "gris", "negro", "dorado", "plateado", "albino"},
		Personalities: []pets.Personality{
			pets.PersonalityIndependent, pets.PersonalityCurious, pets.PersonalityCalm,
			pets.PersonalityNocturnal, pets.PersonalitySociable,
		},
	},
}

var Provinces = []string{
	"Buenos Aires", "Córdoba", "Santa Fe", "Mendoza", "Tucumán", "Entre Ríos", "Salta", "Misiones",
	"San Juan", "Corrientes", "Santiago del Estero", "San Luis", "Formosa", "Neuquén", "Chaco",
	"Río Negro", "Catamarca", "Jujuy", "La Pampa", "Santa Cruz", "La Rioja", "Chubut", "Tierra del Fuego",
}

var Cities = []string{
	"Buenos Aires", "Córdoba", "Rosario", "Mendoza", "San Miguel de Tucumán", "La Plata", "Mar del Plata",
	"Quilmes", "Salta", "Santa Fe", "San Juan", "Resistencia", "Neuquén", "Santiago del Estero", "Corrientes",
}

type span struct{ lo, hi float64 }

var ageRanges = map[pets.Species]span{
	pets.SpeciesPerro:   {0.5, 15},
	pets.SpeciesGato:    {0.5, 18},
	pets.SpeciesAve:     {0.5, 12},
	pets.SpeciesPez:     {0.5, 5},
	pets.SpeciesHamster: {0.5, 3},
	pets.SpeciesConejo:  {0.5, 10},
}

var defaultAgeRange = span{1, 10}

// Age devuelve una edad en años con un decimal.
func Age(r Source, s pets.Species) float64 {
	rg, ok := ageRanges[s]
	if !ok {
		rg = defaultAgeRange
	}
	return round(Between(r, rg.lo, rg.hi), 1)
}

var weightRanges = map[pets.Species]map[pets.Size]span{
	pets.SpeciesPerro: {
		pets.SizeSmall: {2, 10}, pets.SizeMedium: {10, 25}, pets.SizeLarge: {25, 45}, pets.SizeXLarge: {45, 80},
	},
	pets.SpeciesGato: {
		pets.SizeSmall: {2, 4}, pets.SizeMedium: {4, 6}, pets.SizeLarge: {6, 8}, pets.SizeXLarge: {8, 12},
	},
	pets.SpeciesAve: {
		pets.SizeSmall: {0.1, 0.5}, pets.SizeMedium: {0.5, 1}, pets.SizeLarge: {1, 2}, pets.SizeXLarge: {2, 5},
	},
}

var defaultWeightRange = span{1, 6}

// Weight devuelve kg con dos decimales. Especie o tamaño desconocido usa [1,6).
func Weight(r Source, s pets.Species, size pets.Size) float64 {
	rg := defaultWeightRange
	if bySize, ok := weightRanges[s]; ok {
		if v, ok := bySize[size]; ok {
			rg = v
		}
	}
	return round(Between(r, rg.lo, rg.hi), 2)
}

var lifeExpectancies = map[pets.Species]string{
	pets.SpeciesPerro:      "10-15 años",
	pets.SpeciesGato:       "12-18 años",
	pets.SpeciesAve:        "5-25 años (varía por especie)",
	pets.SpeciesPez:        "2-10 años",
	pets.SpeciesHamster:    "2-3 años",
	pets.SpeciesConejo:     "8-12 años",
	pets.SpeciesTortuga:    "50-80 años",
	pets.SpeciesIguana:     "15-20 años",
	pets.SpeciesHuron:      "7-10 años",
	pets.SpeciesChinchilla: "10-20 años",
	pets.SpeciesSerpiente:  "15-30 años",
	pets.SpeciesGecko:      "10-25 años",
	pets.SpeciesCobayo:     "4-8 años",
	pets.SpeciesRata:       "2-3 años",
	pets.SpeciesRaton:      "1-3 años",
	pets.SpeciesAxolote:    "10-15 años",
}

const DefaultLifeExpectancy = "5-15 años"

func LifeExpectancy(s pets.Species) string {
	if v, ok := lifeExpectancies[s]; ok {
		return v
	}
	return DefaultLifeExpectancy
}

// Description arma la biografía de la mascota con una de cinco plantillas.
func Description(r Source, p pets.Pet) string {
	traits := make([]string, 0, len(p.Personality))
	for _, t := range p.Personality {
		traits = append(traits, string(t))
	}
	first := "especial"
	if len(traits) > 0 {
		first = traits[0]
	}

	article := "un"
	if p.Species == pets.SpeciesAve {
		article = "una"
	}

	breed := "mestizo"
	if p.Breed != "" {
		breed = "de raza " + p.Breed
	}

	likes := "estar acompañado"
	switch {
	case slices.Contains(p.Personality, pets.PersonalityPlayful):
		likes = "jugar"
	case slices.Contains(p.Personality, pets.PersonalityCalm):
		likes = "relajarse"
	}

	firstTwo := traits
	if len(firstTwo) > 2 {
		firstTwo = firstTwo[:2]
	}

	templates := []string{
		fmt.Sprintf("%s es %s %s muy %s que busca una familia amorosa.", p.Name, article, p.Species, first),
		fmt.Sprintf("Este hermoso %s de %g años es perfecto para familias. %s es %s.", p.Species, p.Age, p.Name, strings.Join(traits, ", ")),
		fmt.Sprintf("%s es un %s %s con un corazón enorme. Le encanta %s.", p.Name, p.Species, breed, likes),
		fmt.Sprintf("Conoce a %s, un adorable %s %s que está buscando su hogar definitivo. Es %s.", p.Name, p.Species, p.Color, strings.Join(firstTwo, " y ")),
		fmt.Sprintf("%s es un %s especial que ha sido rescatado y rehabilitado. Ahora está listo para dar mucho amor a su nueva familia.", p.Name, p.Species),
	}
	return Pick(r, templates)
}

var (
	energyLevels  = []string{"muy bajo", "bajo", "moderado", "alto", "muy alto"}
	groomingNeeds = []string{"mínimo", "bajo", "moderado", "alto", "muy alto"}
	trainability  = []string{"muy difícil", "difícil", "moderado", "fácil", "muy fácil"}

	treatments    = []string{"Vacunación", "Desparasitación", "Castración", "Tratamiento dental", "Chequeo general"}
	veterinarians = []string{"Dr. García", "Dra. Rodríguez", "Dr. López", "Dra. Martínez"}

	specialNeeds = []string{
		"Requiere medicación diaria",
		"Necesita dieta especial",
		"Mejor como única mascota",
		"Requiere ejercicio moderado por condición médica",
		"Necesita cuidados especiales por edad avanzada",
	}

	firstNames = []string{"María", "Juan", "Ana", "Carlos", "Laura", "Diego", "Sofía", "Miguel", "Valentina", "Mateo", "Camila", "Santiago", "Isabella", "Nicolás", "Martina"}
	lastNames  = []string{"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sánchez", "Pérez", "Gómez", "Martín", "Jiménez", "Ruiz", "Hernández", "Díaz", "Moreno"}
)

// Characteristics completa los rasgos descriptivos de una mascota.
func Characteristics(r Source, s pets.Species) *pets.Characteristics {
	return &pets.Characteristics{
		EnergyLevel:    Pick(r, energyLevels),
		GroomingNeeds:  Pick(r, groomingNeeds),
		Trainability:   Pick(r, trainability),
		LifeExpectancy: LifeExpectancy(s),
	}
}

const microchipAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MicrochipID: "MC" + 9 alfanuméricos en mayúscula.
func MicrochipID(r Source) string {
	var sb strings.Builder
	sb.Grow(11)
	sb.WriteString("MC")
	for range 9 {
		sb.WriteByte(microchipAlphabet[r.IntN(len(microchipAlphabet))])
	}
	return sb.String()
}
