package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/auth/controller"
	"cropadvisor/pkg/middleware"
)

const devUID = "farmer-dev"

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

// DevLogin sets the identity cookie to ?uid=, or to a fixed development id.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := strings.TrimSpace(c.QueryParam("uid"))
	if uid == "" {
		uid = devUID
	}
	c.SetCookie(&http.Cookie{Name: middleware.IdentityCookie, Value: uid, Path: "/", HttpOnly: true})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get(middleware.ContextKey).(string)
	return c.JSON(http.StatusOK, map[string]any{"uid": uid, "anonymous": uid == ""})
}
