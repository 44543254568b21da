package weddingnanny

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

// handleSitemap serves the admin-edited sitemap verbatim, or one generated
// from the city list when the field is blank.
func (a *App) handleSitemap(c echo.Context) error {
	if custom := a.Store.Global().SitemapXML; strings.TrimSpace(custom) != "" {
		return c.Blob(http.StatusOK, "application/xml; charset=utf-8", []byte(custom))
	}
	return a.renderSitemap(c)
}

func (a *App) renderSitemap(c echo.Context) error {
	var urls []sitemapURL
	for _, id := range a.Store.CityIDs() {
		u := sitemapURL{Loc: CityURL(a.Config.URL, id), Priority: "0.8"}
		if len(urls) == 0 {
			u.Priority = "1.0"
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

// handleRobots serves the admin-edited robots.txt verbatim, or a permissive
// default pointing at the sitemap when the field is blank.
func (a *App) handleRobots(c echo.Context) error {
	body := a.Store.Global().RobotsTxt
	if strings.TrimSpace(body) == "" {
		body = fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s\n",
			strings.TrimSuffix(a.Config.URL, "/")+"/sitemap.xml")
	}
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
