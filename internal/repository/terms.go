package repository

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lawfully-illegal/masterhub/internal/model"
)

// TermRepository is the legal terms table, kept in its published order.
type TermRepository struct {
	terms []model.LegalTerm
	byKey map[string]int
}

func loadTerms() (*TermRepository, error) {
	var terms []model.LegalTerm
	if err := decodeTable("legal_terms.json", &terms); err != nil {
		return nil, err
	}
	return newTermRepository(terms)
}

func newTermRepository(terms []model.LegalTerm) (*TermRepository, error) {
	byKey := make(map[string]int, len(terms))
	for i, t := range terms {
		switch {
		case t.Key == "":
			return nil, errors.Errorf("term %d has an empty key", i)
		case t.Key != strings.ToLower(t.Key):
			return nil, errors.Errorf("term key %q is not lowercase", t.Key)
		}
		if _, dup := byKey[t.Key]; dup {
			return nil, errors.Errorf("duplicate term key %q", t.Key)
		}
		byKey[t.Key] = i
	}

	return &TermRepository{terms: terms, byKey: byKey}, nil
}

// Get returns the term stored under key. Keys are matched exactly; callers
// lowercase user input first.
func (r *TermRepository) Get(key string) (model.LegalTerm, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return model.LegalTerm{}, false
	}
	return r.terms[i], true
}

// Keys returns every term key in table order.
func (r *TermRepository) Keys() []string {
	keys := make([]string, len(r.terms))
	for i, t := range r.terms {
		keys[i] = t.Key
	}
	return keys
}

// Len returns the number of terms.
func (r *TermRepository) Len() int {
	return len(r.terms)
}
