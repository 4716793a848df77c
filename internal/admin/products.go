package admin

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type productForm struct {
	Name          string `form:"name" validate:"required,min=2,max=200"`
	Description   string `form:"description" validate:"max=2000"`
	Price         string `form:"price" validate:"required,money"`
	CostPrice     string `form:"cost_price" validate:"omitempty,money"`
	CategoryID    int64  `form:"category_id" validate:"gt=0"`
	SubcategoryID int64  `form:"subcategory_id" validate:"gte=0"`
	Stock         string `form:"stock" validate:"omitempty,number"`
	ImageURL      string `form:"image_url" validate:"omitempty,url"`
	IsActive      bool   `form:"is_active"`
}

func formFromProduct(p *domain.Product) productForm {
	f := productForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Decimal(),
		CostPrice:   p.CostPrice.Decimal(),
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
	}
	if p.SubcategoryID != nil {
		f.SubcategoryID = *p.SubcategoryID
	}
	if p.Stock != nil {
		f.Stock = strconv.Itoa(*p.Stock)
	}
	return f
}

// apply copies a validated form onto p. An empty stock means unlimited.
func (f productForm) apply(p *domain.Product) error {
	price, err := domain.ParseMoney(f.Price)
	if err != nil {
		return err
	}
	var cost domain.Money
	if strings.TrimSpace(f.CostPrice) != "" {
		if cost, err = domain.ParseMoney(f.CostPrice); err != nil {
			return err
		}
	}
	var stock *int
	if f.Stock != "" {
		n, err := strconv.Atoi(f.Stock)
		if err != nil {
			return err
		}
		stock = &n
	}
	var sub *int64
	if f.SubcategoryID > 0 {
		id := f.SubcategoryID
		sub = &id
	}

	p.Name = strings.TrimSpace(f.Name)
	p.Description = strings.TrimSpace(f.Description)
	p.Price = price
	p.CostPrice = cost
	p.CategoryID = f.CategoryID
	p.SubcategoryID = sub
	p.Stock = stock
	p.ImageURL = strings.TrimSpace(f.ImageURL)
	p.IsActive = f.IsActive
	return nil
}

func (s *Server) listProducts(c echo.Context) error {
	ctx := c.Request().Context()
	page := pageParam(c)
	categoryID, _ := strconv.ParseInt(c.QueryParam("category"), 10, 64)
	filter := ports.ProductFilter{
		Search:     strings.TrimSpace(c.QueryParam("q")),
		CategoryID: categoryID,
		Limit:      pageSize,
		Offset:     offset(page),
	}

	products, total, err := s.deps.Products.List(ctx, filter)
	if err != nil {
		return err
	}
	categories, err := s.deps.Categories.ListCategories(ctx, false)
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "products.html", echo.Map{
		"Title":      "Товары",
		"Products":   products,
		"Categories": categories,
		"CategoryID": categoryID,
		"Query":      filter.Search,
		"Pager":      newPager("/products", c.QueryParams(), page, total),
	})
}

func (s *Server) newProduct(c echo.Context) error {
	return s.renderProductForm(c, http.StatusOK, 0, productForm{IsActive: true}, nil)
}

func (s *Server) createProduct(c echo.Context) error {
	form, errs, err := s.bindProduct(c)
	if err != nil {
		return err
	}
	if errs != nil {
		return s.renderProductForm(c, http.StatusUnprocessableEntity, 0, form, errs)
	}

	p := &domain.Product{}
	if err := form.apply(p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.deps.Products.Create(c.Request().Context(), p); err != nil {
		return err
	}
	s.log.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("Product created")
	return c.Redirect(http.StatusSeeOther, "/products")
}

func (s *Server) editProduct(c echo.Context) error {
	p, err := s.loadProduct(c)
	if err != nil {
		return err
	}
	return s.renderProductForm(c, http.StatusOK, p.ID, formFromProduct(p), nil)
}

func (s *Server) updateProduct(c echo.Context) error {
	p, err := s.loadProduct(c)
	if err != nil {
		return err
	}
	form, errs, err := s.bindProduct(c)
	if err != nil {
		return err
	}
	if errs != nil {
		return s.renderProductForm(c, http.StatusUnprocessableEntity, p.ID, form, errs)
	}

	if err := form.apply(p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.deps.Products.Update(c.Request().Context(), p); err != nil {
		return err
	}
	s.log.Info().Int64("product_id", p.ID).Msg("Product updated")
	return c.Redirect(http.StatusSeeOther, "/products")
}

func (s *Server) loadProduct(c echo.Context) (*domain.Product, error) {
	id, err := idParam(c)
	if err != nil {
		return nil, err
	}
	p, err := s.deps.Products.Get(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Товар #%d не найден", id))
	}
	return p, nil
}

// bindProduct returns field errors for input the user can fix, and err for
// everything else.
func (s *Server) bindProduct(c echo.Context) (productForm, map[string]string, error) {
	var form productForm
	if err := c.Bind(&form); err != nil {
		return form, nil, echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	if err := c.Validate(&form); err != nil {
		return form, fieldErrors(err), nil
	}
	if errs, err := s.checkCategory(c.Request().Context(), form); errs != nil || err != nil {
		return form, errs, err
	}
	return form, nil, nil
}

// checkCategory makes sure the category exists and owns the subcategory.
func (s *Server) checkCategory(ctx context.Context, form productForm) (map[string]string, error) {
	category, err := s.deps.Categories.GetCategory(ctx, form.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return map[string]string{"category_id": "категория не найдена"}, nil
	}
	if form.SubcategoryID == 0 {
		return nil, nil
	}
	sub, err := s.deps.Categories.GetSubcategory(ctx, form.SubcategoryID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.CategoryID != category.ID {
		return map[string]string{"subcategory_id": "подкатегория не из этой категории"}, nil
	}
	return nil, nil
}

func (s *Server) renderProductForm(c echo.Context, code int, productID int64, form productForm, errs map[string]string) error {
	ctx := c.Request().Context()
	categories, err := s.deps.Categories.ListCategories(ctx, false)
	if err != nil {
		return err
	}
	var subcategories []*domain.Subcategory
	if form.CategoryID > 0 {
		if subcategories, err = s.deps.Categories.ListSubcategories(ctx, form.CategoryID); err != nil {
			return err
		}
	}

	title := "Новый товар"
	action := "/products/new"
	if productID > 0 {
		title = fmt.Sprintf("Товар #%d", productID)
		action = fmt.Sprintf("/products/%d/edit", productID)
	}
	return s.render(c, code, "product_form.html", echo.Map{
		"Title":         title,
		"Action":        action,
		"Form":          form,
		"Errors":        errs,
		"Categories":    categories,
		"Subcategories": subcategories,
	})
}
