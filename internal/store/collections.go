package store

// entity is a collection member addressable by id.
type entity[E any] interface {
	Key() string
	Clone() E
}

func cloneAll[E entity[E]](items []E) []E {
	if items == nil {
		return nil
	}
	out := make([]E, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func appendOne[E entity[E]](items []E, item E) []E {
	out := make([]E, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item.Clone())
}

func prependOne[E entity[E]](items []E, item E) []E {
	out := make([]E, 0, len(items)+1)
	out = append(out, item.Clone())
	return append(out, items...)
}

// replaceOne swaps the member with item's id. The input slice is returned as is
// when no member matches.
func replaceOne[E entity[E]](items []E, item E) []E {
	idx := indexOf(items, item.Key())
	if idx < 0 {
		return items
	}
	out := make([]E, len(items))
	copy(out, items)
	out[idx] = item.Clone()
	return out
}

// removeOne drops every member with the given id, keeping the order of the rest.
func removeOne[E entity[E]](items []E, id string) []E {
	if indexOf(items, id) < 0 {
		return items
	}
	out := make([]E, 0, len(items)-1)
	for _, item := range items {
		if item.Key() != id {
			out = append(out, item)
		}
	}
	return out
}

func indexOf[E entity[E]](items []E, id string) int {
	for i, item := range items {
		if item.Key() == id {
			return i
		}
	}
	return -1
}

func findOne[E entity[E]](items []E, id string) (E, bool) {
	if idx := indexOf(items, id); idx >= 0 {
		return items[idx].Clone(), true
	}
	var zero E
	return zero, false
}
