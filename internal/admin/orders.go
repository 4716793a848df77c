package admin

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type statusForm struct {
	Status string `form:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}

func listParams(c echo.Context, page int) ports.ListParams {
	return ports.ListParams{
		Search: strings.TrimSpace(c.QueryParam("q")),
		Limit:  pageSize,
		Offset: offset(page),
	}
}

func (s *Server) listOrders(c echo.Context) error {
	page := pageParam(c)
	status := domain.OrderStatus(c.QueryParam("status"))
	if !status.Valid() {
		status = ""
	}
	filter := ports.OrderFilter{
		Status: status,
		Search: strings.TrimSpace(c.QueryParam("q")),
		Limit:  pageSize,
		Offset: offset(page),
	}

	orders, total, err := s.deps.Orders.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "orders.html", echo.Map{
		"Title":    "Заказы",
		"Orders":   orders,
		"Status":   status,
		"Query":    filter.Search,
		"Statuses": domain.OrderStatuses,
		"Pager":    newPager("/orders", c.QueryParams(), page, total),
	})
}

func (s *Server) showOrder(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := idParam(c)
	if err != nil {
		return err
	}
	order, err := s.deps.Orders.Get(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Заказ #%d не найден", id))
	}
	customer, err := s.deps.Users.GetByID(ctx, order.UserID)
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "order.html", echo.Map{
		"Title":    fmt.Sprintf("Заказ #%d", order.ID),
		"Order":    order,
		"Customer": customer,
		"Statuses": domain.OrderStatuses,
	})
}

// updateOrderStatus moves an order and tells the customer through the bus.
func (s *Server) updateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var form statusForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Недопустимый статус")
	}

	order, err := s.deps.Orders.Get(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Заказ #%d не найден", id))
	}

	next := domain.OrderStatus(form.Status)
	if next != order.Status {
		if err := s.deps.Orders.UpdateStatus(ctx, id, next); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Заказ #%d не найден", id))
			}
			return err
		}
		change := domain.OrderStatusChange{Order: order, Previous: order.Status}
		order.Status = next
		if err := s.deps.Bus.Publish(ctx, ports.TopicOrderStatus, change); err != nil {
			s.log.Error().Err(err).Int64("order_id", id).Msg("Failed to publish status change")
		}
		s.log.Info().
			Int64("order_id", id).
			Str("from", string(change.Previous)).
			Str("to", string(next)).
			Msg("Order status changed")
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/orders/%d", id))
}
