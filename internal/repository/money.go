package repository

import (
	"github.com/pkg/errors"

	"github.com/lawfully-illegal/masterhub/internal/model"
)

// MoneyTypeRepository is the ordered medium-of-exchange taxonomy.
type MoneyTypeRepository struct {
	types []model.MoneyType
}

func loadMoneyTypes() (*MoneyTypeRepository, error) {
	var types []model.MoneyType
	if err := decodeTable("money_types.json", &types); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(types))
	for i, t := range types {
		if t.Type == "" {
			return nil, errors.Errorf("money type %d has no name", i)
		}
		if _, dup := seen[t.Type]; dup {
			return nil, errors.Errorf("duplicate money type %q", t.Type)
		}
		seen[t.Type] = struct{}{}
	}

	return &MoneyTypeRepository{types: types}, nil
}

// All returns a copy of every money type in table order.
func (r *MoneyTypeRepository) All() []model.MoneyType {
	out := make([]model.MoneyType, len(r.types))
	for i, t := range r.types {
		out[i] = cloneMoneyType(t)
	}
	return out
}

// Find returns the first money type accepted by match.
func (r *MoneyTypeRepository) Find(match func(model.MoneyType) bool) (model.MoneyType, bool) {
	for _, t := range r.types {
		if match(t) {
			return cloneMoneyType(t), true
		}
	}
	return model.MoneyType{}, false
}

// Names returns the money type names as published, in table order.
func (r *MoneyTypeRepository) Names() []string {
	names := make([]string, len(r.types))
	for i, t := range r.types {
		names[i] = t.Type
	}
	return names
}

// Len returns the number of money types.
func (r *MoneyTypeRepository) Len() int {
	return len(r.types)
}

func cloneMoneyType(t model.MoneyType) model.MoneyType {
	c := t.Characteristics
	c.Examples = append([]string(nil), c.Examples...)
	c.Advantages = append([]string(nil), c.Advantages...)
	c.Disadvantages = append([]string(nil), c.Disadvantages...)
	t.Characteristics = c
	return t
}
