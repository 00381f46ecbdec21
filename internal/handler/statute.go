package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/service"
)

type StatuteHandler struct {
	Handler
	statuteService *service.StatuteService
}

func NewStatuteHandler(s *server.Server, statuteService *service.StatuteService) *StatuteHandler {
	return &StatuteHandler{
		Handler:        NewHandler(s),
		statuteService: statuteService,
	}
}

func (h *StatuteHandler) Search(c echo.Context, req *model.SearchStatutesRequest) (*model.StatuteSearchResult, error) {
	return h.statuteService.Search(req), nil
}
