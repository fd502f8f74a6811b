package pets

// GroupByOwner agrupa los IDs de mascotas por dueño, respetando el orden de
// items. Las mascotas sin dueño van a unowned.
func GroupByOwner(items []Pet) (owned map[string][]string, unowned []string) {
	owned = make(map[string][]string)
	unowned = make([]string, 0)
	for _, p := range items {
		if p.OwnerID == "" {
			unowned = append(unowned, p.ID)
			continue
		}
		owned[p.OwnerID] = append(owned[p.OwnerID], p.ID)
	}
	return owned, unowned
}
