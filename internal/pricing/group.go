package pricing

import "coffee-subscription/internal/domain"

// Group is one catalog entry with the number of times it was selected.
type Group[T any] struct {
	Item     T   `json:"item"`
	Quantity int `json:"quantity"`
}

// GroupBy aggregates repeated entries by id, keeping first-seen order.
func GroupBy[T any](items []T, id func(T) string) []Group[T] {
	index := make(map[string]int, len(items))
	out := make([]Group[T], 0, len(items))
	for _, it := range items {
		key := id(it)
		if i, ok := index[key]; ok {
			out[i].Quantity++
			continue
		}
		index[key] = len(out)
		out = append(out, Group[T]{Item: it, Quantity: 1})
	}
	return out
}

func GroupMachines(items []domain.Machine) []Group[domain.Machine] {
	return GroupBy(items, func(m domain.Machine) string { return m.ID })
}

func GroupCoffees(items []domain.CoffeeVariety) []Group[domain.CoffeeVariety] {
	return GroupBy(items, func(c domain.CoffeeVariety) string { return c.ID })
}

func GroupAccompaniments(items []domain.Accompaniment) []Group[domain.Accompaniment] {
	return GroupBy(items, func(a domain.Accompaniment) string { return a.ID })
}

func GroupAccessories(items []domain.Accessory) []Group[domain.Accessory] {
	return GroupBy(items, func(a domain.Accessory) string { return a.ID })
}

// Quantity counts the entries with the given id.
func Quantity[T any](items []T, id func(T) string, want string) int {
	n := 0
	for _, it := range items {
		if id(it) == want {
			n++
		}
	}
	return n
}
