package localstore

import (
	"encoding/json"
	"fmt"
)

// Collection é o repositório genérico sobre um slot do Store: a mesma forma
// find/create/update/delete para qualquer entidade, parametrizada apenas pela
// função de identidade. Toda mutação passa por Store.Update, que segura o
// lock de escrita durante o ciclo leitura-modificação-gravação completo.
// A especialização por entidade (ordenação, filtros de busca, política de
// soft delete) fica nos adaptadores.
type Collection[T any] struct {
	store *Store
	slot  string
	id    func(*T) string
}

// NewCollection cria a coleção sobre um slot. id extrai o identificador da entidade.
func NewCollection[T any](store *Store, slot string, id func(*T) string) *Collection[T] {
	return &Collection[T]{store: store, slot: slot, id: id}
}

func (c *Collection[T]) decode(data []byte) ([]*T, error) {
	if len(data) == 0 {
		return []*T{}, nil
	}
	var items []*T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("localstore: decodificar %s: %w", c.slot, err)
	}
	return items, nil
}

func (c *Collection[T]) encode(items []*T) ([]byte, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("localstore: codificar %s: %w", c.slot, err)
	}
	return data, nil
}

// All decodifica o blob inteiro. Slot vazio devolve lista vazia.
func (c *Collection[T]) All() ([]*T, error) {
	data, err := c.store.ReadBlob(c.slot)
	if err != nil {
		return nil, err
	}
	return c.decode(data)
}

// Get devolve a entidade pelo id, ou nil quando ausente.
func (c *Collection[T]) Get(id string) (*T, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if c.id(it) == id {
			return it, nil
		}
	}
	return nil, nil
}

// Insert acrescenta a entidade ao blob.
func (c *Collection[T]) Insert(item *T) error {
	return c.store.Update(c.slot, func(data []byte) ([]byte, error) {
		items, err := c.decode(data)
		if err != nil {
			return nil, err
		}
		return c.encode(append(items, item))
	})
}

// Replace substitui a entidade de mesmo id; devolve false quando o id não existe.
func (c *Collection[T]) Replace(item *T) (bool, error) {
	replaced := false
	err := c.store.Update(c.slot, func(data []byte) ([]byte, error) {
		items, err := c.decode(data)
		if err != nil {
			return nil, err
		}
		for i, it := range items {
			if c.id(it) == c.id(item) {
				items[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			return data, nil
		}
		return c.encode(items)
	})
	if err != nil {
		return false, err
	}
	return replaced, nil
}

// Remove exclui a entidade pelo id; devolve false quando o id não existe.
func (c *Collection[T]) Remove(id string) (bool, error) {
	removed := false
	err := c.store.Update(c.slot, func(data []byte) ([]byte, error) {
		items, err := c.decode(data)
		if err != nil {
			return nil, err
		}
		kept := make([]*T, 0, len(items))
		for _, it := range items {
			if c.id(it) == id {
				removed = true
				continue
			}
			kept = append(kept, it)
		}
		if !removed {
			return data, nil
		}
		return c.encode(kept)
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// RemoveWhere exclui todas as entidades aprovadas pelo predicado e devolve quantas saíram.
func (c *Collection[T]) RemoveWhere(pred func(*T) bool) (int, error) {
	removed := 0
	err := c.store.Update(c.slot, func(data []byte) ([]byte, error) {
		items, err := c.decode(data)
		if err != nil {
			return nil, err
		}
		kept := make([]*T, 0, len(items))
		for _, it := range items {
			if pred(it) {
				removed++
				continue
			}
			kept = append(kept, it)
		}
		if removed == 0 {
			return data, nil
		}
		return c.encode(kept)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Filter devolve as entidades aprovadas pelo predicado, na ordem do blob.
func (c *Collection[T]) Filter(pred func(*T) bool) ([]*T, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out, nil
}
