package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/service"
)

// MoneyHandler serves the money type taxonomy.
type MoneyHandler struct {
	Handler
	moneyService *service.MoneyService
}

func NewMoneyHandler(s *server.Server, moneyService *service.MoneyService) *MoneyHandler {
	return &MoneyHandler{
		Handler:      NewHandler(s),
		moneyService: moneyService,
	}
}

func (h *MoneyHandler) ListTypes(c echo.Context, _ *model.NoParams) (*model.MoneyTypeCatalog, error) {
	return h.moneyService.ListTypes(), nil
}

func (h *MoneyHandler) GetType(c echo.Context, req *model.GetMoneyTypeRequest) (*model.MoneyType, error) {
	return h.moneyService.GetType(req.Type)
}
