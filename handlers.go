package weddingnanny

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/weddingnanny/content"
)

var errCityNotFound = errors.New("weddingnanny: city not found")

func (a *App) handleHome(c echo.Context) error {
	return a.renderCity(c, content.HomeCityID)
}

func (a *App) handleCity(c echo.Context) error {
	return a.renderCity(c, c.Param("city"))
}

func (a *App) renderCity(c echo.Context, id string) error {
	body, err := a.Pages.Get(id, func() ([]byte, error) {
		page, ok := a.Store.City(id)
		if !ok {
			return nil, errCityNotFound
		}
		return renderBytes(c.Request().Context(), a.Views.CityPage(a.cityView(page)))
	})
	if errors.Is(err, errCityNotFound) {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	if err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, body)
}

func (a *App) cityView(page content.CityPage) CityView {
	cities := a.Store.Cities()
	links := make([]CityLink, 0, len(cities))
	for _, id := range a.Store.CityIDs() {
		p, ok := cities[id]
		if !ok {
			continue
		}
		links = append(links, CityLink{ID: id, Name: p.Name, URL: CityURL(a.Config.URL, id)})
	}
	return CityView{
		Page:      page,
		Global:    a.Store.Global(),
		Cities:    links,
		SiteURL:   a.Config.URL,
		Canonical: CityURL(a.Config.URL, page.ID),
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
