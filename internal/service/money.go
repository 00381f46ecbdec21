package service

import (
	"strings"

	"github.com/lawfully-illegal/masterhub/internal/errs"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/repository"
)

const moneySource = "medium-of-exchange repository"

// moneyLegalBasis is attached to every catalog response.
var moneyLegalBasis = model.MoneyLegalBasis{
	UCC:            "UCC § 1-201(24)",
	Federal:        []string{"12 USC § 411", "31 USC § 5103"},
	Constitutional: []string{"Article I, Section 8", "Article I, Section 10"},
}

type MoneyService struct {
	types *repository.MoneyTypeRepository
}

func NewMoneyService(types *repository.MoneyTypeRepository) *MoneyService {
	return &MoneyService{types: types}
}

// ListTypes returns the full taxonomy with its common legal basis.
func (s *MoneyService) ListTypes() *model.MoneyTypeCatalog {
	return &model.MoneyTypeCatalog{
		Definitions: s.types.All(),
		Source:      moneySource,
		LegalBasis: model.MoneyLegalBasis{
			UCC:            moneyLegalBasis.UCC,
			Federal:        append([]string(nil), moneyLegalBasis.Federal...),
			Constitutional: append([]string(nil), moneyLegalBasis.Constitutional...),
		},
	}
}

// GetType finds a money type by its slug: "fiat-money", "Fiat_Money",
// "Fiat Money" and "fiat_money" all select "Fiat Money".
func (s *MoneyService) GetType(typ string) (*model.MoneyType, error) {
	want := NormalizeMoneyTypeInput(typ)

	t, ok := s.types.Find(func(t model.MoneyType) bool {
		return MoneyTypeSlug(t.Type) == want
	})
	if !ok {
		return nil, errs.NewNotFoundError("Money type not found", nil).WithDetails(map[string]any{
			"type":            typ,
			"available_types": s.types.Names(),
		})
	}

	return &t, nil
}

// NormalizeMoneyTypeInput lowercases a path segment and turns hyphens and
// spaces into underscores.
func NormalizeMoneyTypeInput(typ string) string {
	return moneyInputReplacer.Replace(strings.ToLower(typ))
}

var moneyInputReplacer = strings.NewReplacer("-", "_", " ", "_")

// MoneyTypeSlug lowercases a money type name and turns spaces into
// underscores. Other punctuation is kept.
func MoneyTypeSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
