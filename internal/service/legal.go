package service

import (
	"strings"

	"github.com/lawfully-illegal/masterhub/internal/errs"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/repository"
)

const (
	legalSource    = "legal-decipher-system"
	maxSuggestions = 5
)

type LegalService struct {
	terms *repository.TermRepository
}

func NewLegalService(terms *repository.TermRepository) *LegalService {
	return &LegalService{terms: terms}
}

// Define looks a term up case-insensitively. The response echoes term as the
// caller wrote it.
//
// On a miss the 404 carries up to five keys containing the lowercased input,
// in table order.
func (s *LegalService) Define(term string) (*model.TermDefinition, error) {
	key := strings.ToLower(term)

	t, ok := s.terms.Get(key)
	if !ok {
		return nil, errs.NewNotFoundError("Term not found", nil).WithDetails(map[string]any{
			"term":        term,
			"suggestions": s.suggest(key),
		})
	}

	return &model.TermDefinition{
		Term:            term,
		Definition:      t.Definition,
		USCCitation:     t.USCCitation,
		UCCCitation:     t.UCCCitation,
		ConstitutionRef: t.ConstitutionRef,
		BlacksLawRef:    t.BlacksLawRef,
		Source:          legalSource,
	}, nil
}

func (s *LegalService) suggest(key string) []string {
	suggestions := []string{}
	for _, k := range s.terms.Keys() {
		if len(suggestions) == maxSuggestions {
			break
		}
		if strings.Contains(k, key) {
			suggestions = append(suggestions, k)
		}
	}
	return suggestions
}

// ListTerms returns every term key in table order.
func (s *LegalService) ListTerms() *model.TermList {
	keys := s.terms.Keys()
	return &model.TermList{
		Terms: keys,
		Count: len(keys),
	}
}
