package repository

import (
	"github.com/pkg/errors"

	"github.com/lawfully-illegal/masterhub/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Terms       *TermRepository
	MoneyTypes  *MoneyTypeRepository
	Statutes    *StatuteRepository
	Obligations *ObligationRepository
}

// NewRepositories loads every reference table and logs their sizes.
//
// A malformed table is a build defect, so the error is meant to stop startup.
func NewRepositories(s *server.Server) (*Repositories, error) {
	repos, err := Load()
	if err != nil {
		return nil, err
	}

	sizes := repos.Sizes()
	s.Logger.Info().
		Int("legal_terms", sizes["legal_terms"]).
		Int("money_types", sizes["money_types"]).
		Int("statutes", sizes["statutes"]).
		Int("obligations", sizes["obligations"]).
		Msg("reference data loaded")

	return repos, nil
}

// Load decodes and validates the embedded tables.
func Load() (*Repositories, error) {
	terms, err := loadTerms()
	if err != nil {
		return nil, errors.WithMessage(err, "legal terms")
	}

	moneyTypes, err := loadMoneyTypes()
	if err != nil {
		return nil, errors.WithMessage(err, "money types")
	}

	statutes, err := loadStatutes()
	if err != nil {
		return nil, errors.WithMessage(err, "statutes")
	}

	obligations, err := loadObligations()
	if err != nil {
		return nil, errors.WithMessage(err, "obligations")
	}

	return &Repositories{
		Terms:       terms,
		MoneyTypes:  moneyTypes,
		Statutes:    statutes,
		Obligations: obligations,
	}, nil
}

// Sizes reports the number of rows per table, keyed by table name.
func (r *Repositories) Sizes() map[string]int {
	return map[string]int{
		"legal_terms": r.Terms.Len(),
		"money_types": r.MoneyTypes.Len(),
		"statutes":    r.Statutes.Len(),
		"obligations": r.Obligations.Len(),
	}
}
