package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/stolovaya/canteen-api/internal/models"
	"github.com/stolovaya/canteen-api/internal/store"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
)

// DishRequest is the payload for adding or removing a menu dish.
type DishRequest struct {
	Day  string `json:"day" validate:"required"`
	Meal string `json:"meal" validate:"required"`
	Dish string `json:"dish" validate:"required"`
}

// MenuService exposes the weekly menu catalog.
type MenuService struct {
	menu      *store.MenuStore
	validator *validator.Validate
}

// NewMenuService creates an instance of MenuService.
func NewMenuService(menu *store.MenuStore, validate *validator.Validate) *MenuService {
	if validate == nil {
		validate = validator.New()
	}
	return &MenuService{menu: menu, validator: validate}
}

// Day returns the menu for a weekday; ok is false for unknown days.
func (s *MenuService) Day(day string) (models.DayMenu, bool) {
	return s.menu.Day(day)
}

// AddDish appends a dish to the catalog slot named by the request.
func (s *MenuService) AddDish(req DishRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Обязательны: day, meal и dish")
	}
	if err := s.menu.Add(req.Day, req.Meal, req.Dish); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Неизвестный день или приём пищи")
	}
	return nil
}

// RemoveDish deletes a dish from the catalog slot named by the request.
// Removing a dish that is not listed still succeeds.
func (s *MenuService) RemoveDish(req DishRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Обязательны: day, meal и dish")
	}
	if err := s.menu.Remove(req.Day, req.Meal, req.Dish); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Неизвестный день или приём пищи")
	}
	return nil
}
