package pets

import "strings"

// Matches aplica el filtro en memoria. Los adapters SQL traducen el mismo filtro a WHERE.
func (f ListFilter) Matches(p Pet) bool {
	if f.Species != "" && p.Species != f.Species {
		return false
	}
	if f.AdoptionStatus != "" && p.AdoptionStatus != f.AdoptionStatus {
		return false
	}
	if f.Size != "" && p.Size != f.Size {
		return false
	}
	if f.OwnerID != "" && p.OwnerID != f.OwnerID {
		return false
	}
	if f.AgeMin != nil && p.Age < *f.AgeMin {
		return false
	}
	if f.AgeMax != nil && p.Age > *f.AgeMax {
		return false
	}
	if f.City != "" && !strings.Contains(strings.ToLower(p.Location.City), strings.ToLower(f.City)) {
		return false
	}
	if f.Personality != "" {
		found := false
		for _, v := range p.Personality {
			if v == f.Personality {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
