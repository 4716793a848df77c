package admin

import (
	"ShopBot/internal/core/domain"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const customerOrdersLimit = 20

type banForm struct {
	Banned string `form:"banned" validate:"required,oneof=true false"`
}

func (s *Server) listCustomers(c echo.Context) error {
	page := pageParam(c)
	params := listParams(c, page)
	users, total, err := s.deps.Users.List(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "customers.html", echo.Map{
		"Title":     "Клиенты",
		"Customers": users,
		"Query":     params.Search,
		"Pager":     newPager("/customers", c.QueryParams(), page, total),
	})
}

func (s *Server) showCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	user, err := s.deps.Users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Клиент не найден")
	}

	orders, err := s.deps.Orders.ListByUser(ctx, id, customerOrdersLimit)
	if err != nil {
		return err
	}
	stats, err := s.deps.Orders.UserStats(ctx, id)
	if err != nil {
		return err
	}
	account, err := s.deps.Loyalty.Get(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		account = &domain.LoyaltyAccount{UserID: id}
	}
	return s.render(c, http.StatusOK, "customer.html", echo.Map{
		"Title":    user.Name,
		"Customer": user,
		"Orders":   orders,
		"Stats":    stats,
		"Loyalty":  account,
		"Tier":     account.Tier(),
	})
}

// setCustomerBan blocks or unblocks a customer in the bot.
func (s *Server) setCustomerBan(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	var form banForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Недопустимое значение")
	}

	user, err := s.deps.Users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Клиент не найден")
	}

	banned := form.Banned == "true"
	if user.IsBanned != banned {
		user.IsBanned = banned
		if err := s.deps.Users.Update(ctx, user); err != nil {
			return err
		}
		s.log.Info().Str("user_id", id.String()).Bool("banned", banned).Msg("Customer ban changed")
	}
	return c.Redirect(http.StatusSeeOther, "/customers/"+id.String())
}
