package repository

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/lawfully-illegal/masterhub/internal/model"
)

// ObligationRepository lists the constitutional obligations of oath-taking
// officials.
type ObligationRepository struct {
	obligations []model.Obligation
}

func loadObligations() (*ObligationRepository, error) {
	var obligations []model.Obligation
	if err := decodeTable("obligations.json", &obligations); err != nil {
		return nil, err
	}

	for _, o := range obligations {
		if o.Title == "" {
			return nil, errors.New("obligation without a title")
		}
	}

	return &ObligationRepository{obligations: obligations}, nil
}

// All returns a copy of every obligation in table order.
func (r *ObligationRepository) All() []model.Obligation {
	return slices.Clone(r.obligations)
}

// Len returns the number of obligations.
func (r *ObligationRepository) Len() int {
	return len(r.obligations)
}
