package weddingnanny

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// ErrAuthentication is returned when a submitted admin password is wrong.
var ErrAuthentication = errors.New("weddingnanny: authentication failed")

// Gate checks the shared admin secret. There is no lockout or retry limit.
type Gate struct {
	secret []byte
}

// NewGate returns a Gate accepting exactly secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Check returns ErrAuthentication unless password matches the secret.
func (g *Gate) Check(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), g.secret) != 1 {
		return ErrAuthentication
	}
	return nil
}

const sessionName = "admin_session"

// isAdmin reports whether the request carries a session issued by this
// process. Sessions from before a restart carry another boot id and are
// treated as logged out.
func (a *App) isAdmin(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	auth, ok := sess.Values["authenticated"].(bool)
	boot, _ := sess.Values["boot"].(string)
	return ok && auth && boot == a.bootID
}

func (a *App) setAdminSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values["authenticated"] = true
	sess.Values["boot"] = a.bootID
	return sess.Save(c.Request(), c.Response())
}

// requireAdmin rejects API calls without an admin session.
func (a *App) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !a.isAdmin(c) {
			return c.JSON(http.StatusUnauthorized, apiErrorBody{Error: ErrAuthentication.Error()})
		}
		return next(c)
	}
}

func (a *App) handleAdmin(c echo.Context) error {
	if !a.isAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	view, err := a.adminView(c, c.QueryParam("msg"))
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminConsole(view))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if err := a.Gate.Check(c.FormValue("password")); err != nil {
		return RenderStatus(c, http.StatusUnauthorized, a.Views.AdminLogin(true, CsrfToken(c)))
	}
	if err := a.setAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}
