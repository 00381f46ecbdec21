package repository

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/lawfully-illegal/masterhub/internal/model"
)

// StatuteRepository is the fixed sample of statutes the search runs over.
type StatuteRepository struct {
	statutes []model.Statute
}

func loadStatutes() (*StatuteRepository, error) {
	var statutes []model.Statute
	if err := decodeTable("statutes.json", &statutes); err != nil {
		return nil, err
	}

	for _, s := range statutes {
		if s.Type == "" || s.Citation == "" {
			return nil, errors.Errorf("statute %q is missing its type or citation", s.Citation)
		}
	}

	return &StatuteRepository{statutes: statutes}, nil
}

// All returns a copy of every statute in table order.
func (r *StatuteRepository) All() []model.Statute {
	return slices.Clone(r.statutes)
}

// Len returns the number of statutes.
func (r *StatuteRepository) Len() int {
	return len(r.statutes)
}
