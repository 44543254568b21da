package weddingnanny

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/weddingnanny/content"
	"github.com/eringen/weddingnanny/dashboard"
)

type apiErrorBody struct {
	Error string `json:"error"`
}

// mutationResult is the body of every successful mutation. Persisted is false
// when the change is live in memory but could not be written to storage.
type mutationResult struct {
	Persisted bool   `json:"persisted"`
	Warning   string `json:"warning,omitempty"`
	Data      any    `json:"data,omitempty"`
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

type moveRequest struct {
	Index     int               `json:"index"`
	Direction content.Direction `json:"direction"`
}

type toggleRequest struct {
	Section string `json:"section"`
}

type backupRequest struct {
	Label string `json:"label"`
}

type dashboardResponse struct {
	Stats    dashboard.Stats `json:"stats"`
	Calendar dashboard.Month `json:"calendar"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, content.ErrInvalidArgument), errors.Is(err, ErrInvalidImage):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (a *App) apiError(c echo.Context, err error) error {
	code := statusFor(err)
	if code >= 500 {
		c.Logger().Errorf("admin api: %v", err)
	}
	return c.JSON(code, apiErrorBody{Error: err.Error()})
}

// respond answers a mutation. A *content.PersistenceError is reported in the
// body with status 200 since the change itself succeeded.
func (a *App) respond(c echo.Context, data any, err error) error {
	if err != nil && !content.IsPersistenceError(err) {
		return a.apiError(c, err)
	}
	res := mutationResult{Persisted: err == nil, Data: data}
	if err != nil {
		res.Warning = "Changes are live but could not be saved: " + err.Error()
	}
	return c.JSON(http.StatusOK, res)
}

// bindBody decodes only the request body. echo's Bind would also copy path
// parameters into map destinations.
func bindBody(c echo.Context, v any) error {
	return new(echo.DefaultBinder).BindBody(c, v)
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, apiErrorBody{Error: "malformed request body"})
}

func (a *App) apiState(c echo.Context) error {
	st := a.Store.State()
	return c.JSON(http.StatusOK, map[string]any{
		"cities":      st.Cities,
		"global":      st.Global,
		"backups":     st.Backups,
		"logs":        st.Logs,
		"sections":    content.Sections,
		"loadWarning": errString(a.Store.LoadWarning()),
	})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (a *App) cityParam(c echo.Context) (content.CityPage, error) {
	page, ok := a.Store.City(c.Param("id"))
	if !ok {
		return content.CityPage{}, content.ErrNotFound
	}
	return page, nil
}

func (a *App) apiPutCity(c echo.Context) error {
	var page content.CityPage
	if err := bindBody(c, &page); err != nil {
		return badBody(c)
	}
	id := c.Param("id")
	page.ID = id
	err := a.Store.UpdateCity(id, page, "")
	return a.respond(c, page, err)
}

func (a *App) apiMoveSection(c echo.Context) error {
	page, err := a.cityParam(c)
	if err != nil {
		return a.apiError(c, err)
	}
	var req moveRequest
	if err := bindBody(c, &req); err != nil {
		return badBody(c)
	}
	if req.Direction != content.Up && req.Direction != content.Down {
		return a.apiError(c, fmt.Errorf("%w: direction must be up or down", content.ErrInvalidArgument))
	}
	moved, ok := content.MoveSection(page, req.Index, req.Direction)
	if !ok {
		return a.respond(c, page, nil)
	}
	err = a.Store.UpdateCity(page.ID, moved, content.MoveDescription(moved))
	return a.respond(c, moved, err)
}

func (a *App) apiToggleSection(c echo.Context) error {
	page, err := a.cityParam(c)
	if err != nil {
		return a.apiError(c, err)
	}
	var req toggleRequest
	if err := bindBody(c, &req); err != nil {
		return badBody(c)
	}
	if !slices.Contains(content.Sections, req.Section) {
		return a.apiError(c, fmt.Errorf("%w: unknown section %q", content.ErrInvalidArgument, req.Section))
	}
	toggled := content.ToggleSection(page, req.Section)
	err = a.Store.UpdateCity(page.ID, toggled, content.ToggleDescription(page, req.Section))
	return a.respond(c, toggled, err)
}

func (a *App) apiPatchHero(c echo.Context) error {
	page, err := a.cityParam(c)
	if err != nil {
		return a.apiError(c, err)
	}
	var fields map[string]string
	if err := bindBody(c, &fields); err != nil {
		return badBody(c)
	}
	for _, k := range sortedKeys(fields) {
		if page, err = content.SetHeroField(page, k, fields[k]); err != nil {
			return a.apiError(c, err)
		}
	}
	err = a.Store.UpdateCity(page.ID, page, "")
	return a.respond(c, page, err)
}

func (a *App) apiAddTestimonial(c echo.Context) error {
	page, err := a.cityParam(c)
	if err != nil {
		return a.apiError(c, err)
	}
	page = content.AddTestimonial(page)
	err = a.Store.UpdateCity(page.ID, page, "")
	return a.respond(c, page, err)
}

func (a *App) apiUpdateTestimonial(c echo.Context) error {
	page, err := a.cityParam(c)
	if err != nil {
		return a.apiError(c, err)
	}
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		return a.apiError(c, fmt.Errorf("%w: testimonial index: %v", content.ErrInvalidArgument, err))
	}
	var t content.Testimonial
	if err := bindBody(c, &t); err != nil {
		return badBody(c)
	}
	if page, err = content.UpdateTestimonial(page, idx, t); err != nil {
		return a.apiError(c, err)
	}
	err = a.Store.UpdateCity(page.ID, page, "")
	return a.respond(c, page, err)
}

func (a *App) apiDeleteTestimonial(c echo.Context) error {
	page, err := a.cityParam(c)
	if err != nil {
		return a.apiError(c, err)
	}
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		return a.apiError(c, fmt.Errorf("%w: testimonial index: %v", content.ErrInvalidArgument, err))
	}
	if page, err = content.RemoveTestimonial(page, idx); err != nil {
		return a.apiError(c, err)
	}
	err = a.Store.UpdateCity(page.ID, page, "")
	return a.respond(c, page, err)
}

// apiPutGlobal decodes the body over the current settings, so keys missing
// from the body keep their values.
func (a *App) apiPutGlobal(c echo.Context) error {
	g := a.Store.Global()
	if err := bindBody(c, &g); err != nil {
		return badBody(c)
	}
	err := a.Store.UpdateGlobal(g, "")
	return a.respond(c, g, err)
}

func (a *App) apiPatchGlobal(c echo.Context) error {
	var fields map[string]string
	if err := bindBody(c, &fields); err != nil {
		return badBody(c)
	}
	g := a.Store.Global()
	var err error
	for _, k := range sortedKeys(fields) {
		if g, err = content.SetGlobalField(g, k, fields[k]); err != nil {
			return a.apiError(c, err)
		}
	}
	err = a.Store.UpdateGlobal(g, "")
	return a.respond(c, g, err)
}

func (a *App) apiDashboard(c echo.Context) error {
	bookings := a.Store.Global().Bookings
	year, month := dashboard.LatestMonth(bookings, time.Now())
	if y, err := strconv.Atoi(c.QueryParam("year")); err == nil {
		year = y
	}
	if m, err := strconv.Atoi(c.QueryParam("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Stats:    dashboard.Summarize(bookings),
		Calendar: dashboard.CalendarMonth(bookings, year, month),
	})
}

func (a *App) apiLogs(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Store.Logs())
}

func (a *App) apiBackups(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Store.Backups())
}

func (a *App) apiCreateBackup(c echo.Context) error {
	var req backupRequest
	if err := bindBody(c, &req); err != nil {
		return badBody(c)
	}
	b, err := a.Store.CreateBackup(req.Label)
	return a.respond(c, b, err)
}

func (a *App) apiDeleteBackup(c echo.Context) error {
	err := a.Store.DeleteBackup(c.Param("id"))
	return a.respond(c, nil, err)
}

func (a *App) apiProposeRestore(c echo.Context) error {
	p, err := a.Store.ProposeRestore(c.Param("id"))
	if err != nil {
		return a.apiError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (a *App) apiRestore(c echo.Context) error {
	p, err := a.Store.ProposeRestore(c.Param("id"))
	if err != nil {
		return a.apiError(c, err)
	}
	return a.commitConfirmed(c, p)
}

func (a *App) apiProposeReset(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Store.ProposeReset())
}

func (a *App) apiReset(c echo.Context) error {
	return a.commitConfirmed(c, a.Store.ProposeReset())
}

// commitConfirmed runs p only if the request body confirms it; otherwise it
// answers 409 with the proposal so the client can ask the user.
func (a *App) commitConfirmed(c echo.Context, p content.Proposal) error {
	var req confirmRequest
	if err := bindBody(c, &req); err != nil {
		return badBody(c)
	}
	if p.RequiresConfirmation && !req.Confirm {
		return c.JSON(http.StatusConflict, p)
	}
	err := a.Store.Commit(p)
	return a.respond(c, p, err)
}

func (a *App) apiImages(c echo.Context) error {
	images, err := a.Media.List()
	if err != nil {
		return a.apiError(c, err)
	}
	if images == nil {
		images = []Image{}
	}
	return c.JSON(http.StatusOK, images)
}

func (a *App) apiUploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiErrorBody{Error: "no image file provided"})
	}
	if file.Size > maxUploadSize {
		return c.JSON(http.StatusBadRequest, apiErrorBody{Error: "file too large (max 10MB)"})
	}
	src, err := file.Open()
	if err != nil {
		return a.apiError(c, err)
	}
	defer src.Close()

	img, err := a.Media.Save(src, file.Filename)
	if err != nil {
		return a.apiError(c, err)
	}
	return c.JSON(http.StatusCreated, img)
}

func (a *App) apiDeleteImage(c echo.Context) error {
	if err := a.Media.Delete(c.Param("name")); err != nil {
		return a.apiError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) adminView(c echo.Context, msg string) (AdminView, error) {
	st := a.Store.State()
	images, err := a.Media.List()
	if err != nil {
		return AdminView{}, err
	}
	year, month := dashboard.LatestMonth(st.Global.Bookings, time.Now())
	return AdminView{
		State:       st,
		CityIDs:     a.Store.CityIDs(),
		Stats:       dashboard.Summarize(st.Global.Bookings),
		Calendar:    dashboard.CalendarMonth(st.Global.Bookings, year, month),
		Images:      images,
		CSRFToken:   CsrfToken(c),
		Message:     msg,
		LoadWarning: errString(a.Store.LoadWarning()),
	}, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
