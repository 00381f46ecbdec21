package service

import (
	"strings"

	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/repository"
)

const statuteSearchNote = "Integration with full statute databases pending"

type StatuteService struct {
	statutes *repository.StatuteRepository
}

func NewStatuteService(statutes *repository.StatuteRepository) *StatuteService {
	return &StatuteService{statutes: statutes}
}

// Search returns the statutes whose citation, title or text contains the
// query, ignoring case. A type other than "all" keeps only statutes of that
// type; an unknown type simply matches nothing.
//
// Results keep table order. Relevance is reported but never used to sort.
func (s *StatuteService) Search(req *model.SearchStatutesRequest) *model.StatuteSearchResult {
	typ := req.Type
	if typ == "" {
		typ = model.StatuteSearchAll
	}
	filterByType := !strings.EqualFold(typ, model.StatuteSearchAll)
	query := strings.ToLower(req.Query)

	results := []model.Statute{}
	for _, st := range s.statutes.All() {
		if filterByType && !strings.EqualFold(st.Type, typ) {
			continue
		}

		haystack := strings.ToLower(st.Citation + " " + st.Title + " " + st.Text)
		if strings.Contains(haystack, query) {
			results = append(results, st)
		}
	}

	return &model.StatuteSearchResult{
		Query:   req.Query,
		Type:    typ,
		Results: results,
		Count:   len(results),
		Note:    statuteSearchNote,
	}
}
