package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) dashboard(c echo.Context) error {
	stats, err := s.deps.Orders.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "dashboard.html", echo.Map{
		"Title": "Панель управления",
		"Stats": stats,
	})
}

// listSellers shows become-seller applications, newest first.
func (s *Server) listSellers(c echo.Context) error {
	page := pageParam(c)
	apps, total, err := s.deps.Sellers.List(c.Request().Context(), listParams(c, page))
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "sellers.html", echo.Map{
		"Title":        "Заявки продавцов",
		"Applications": apps,
		"Pager":        newPager("/sellers", c.QueryParams(), page, total),
	})
}
