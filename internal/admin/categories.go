package admin

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type categoryForm struct {
	Name        string `form:"name" validate:"required,min=2,max=100"`
	Description string `form:"description" validate:"max=500"`
	Emoji       string `form:"emoji" validate:"max=16"`
}

type subcategoryForm struct {
	Name  string `form:"name" validate:"required,min=2,max=100"`
	Emoji string `form:"emoji" validate:"max=16"`
}

type categoryRow struct {
	Category      *domain.Category
	Subcategories []*domain.Subcategory
}

type subcategoryJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s *Server) listCategories(c echo.Context) error {
	return s.renderCategories(c, http.StatusOK, nil)
}

func (s *Server) renderCategories(c echo.Context, code int, errs map[string]string) error {
	ctx := c.Request().Context()
	categories, err := s.deps.Categories.ListCategories(ctx, false)
	if err != nil {
		return err
	}
	rows := make([]categoryRow, 0, len(categories))
	for _, cat := range categories {
		subs, err := s.deps.Categories.ListSubcategories(ctx, cat.ID)
		if err != nil {
			return err
		}
		rows = append(rows, categoryRow{Category: cat, Subcategories: subs})
	}
	return s.render(c, code, "categories.html", echo.Map{
		"Title":  "Категории",
		"Rows":   rows,
		"Errors": errs,
	})
}

// createCategory stores the category and announces it to the admins.
func (s *Server) createCategory(c echo.Context) error {
	ctx := c.Request().Context()
	var form categoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	if err := c.Validate(&form); err != nil {
		return s.renderCategories(c, http.StatusUnprocessableEntity, fieldErrors(err))
	}

	category := &domain.Category{
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		Emoji:       strings.TrimSpace(form.Emoji),
		IsActive:    true,
	}
	if err := s.deps.Categories.CreateCategory(ctx, category); err != nil {
		return err
	}
	if err := s.deps.Bus.Publish(ctx, ports.TopicCategoryCreated, category); err != nil {
		s.log.Error().Err(err).Int64("category_id", category.ID).Msg("Failed to publish category")
	}
	s.log.Info().Int64("category_id", category.ID).Str("name", category.Name).Msg("Category created")
	return c.Redirect(http.StatusSeeOther, "/categories")
}

func (s *Server) createSubcategory(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := idParam(c)
	if err != nil {
		return err
	}
	category, err := s.deps.Categories.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Категория не найдена")
	}

	var form subcategoryForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	if err := c.Validate(&form); err != nil {
		return s.renderCategories(c, http.StatusUnprocessableEntity, fieldErrors(err))
	}

	sub := &domain.Subcategory{
		CategoryID: category.ID,
		Name:       strings.TrimSpace(form.Name),
		Emoji:      strings.TrimSpace(form.Emoji),
		IsActive:   true,
	}
	if err := s.deps.Categories.CreateSubcategory(ctx, sub); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/categories")
}

// apiSubcategories feeds the subcategory select of the product form.
func (s *Server) apiSubcategories(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	subs, err := s.deps.Categories.ListSubcategories(c.Request().Context(), id)
	if err != nil {
		return err
	}
	out := make([]subcategoryJSON, 0, len(subs))
	for _, sub := range subs {
		out = append(out, subcategoryJSON{ID: sub.ID, Name: sub.Label()})
	}
	return c.JSON(http.StatusOK, out)
}
