package admin

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	cookieName   = "shopbot_admin"
	contextAdmin = "admin"
	tokenIssuer  = "shopbot-admin"
)

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (s *Server) issueToken(username string) (string, time.Time, error) {
	now := s.deps.Now()
	expires := now.Add(s.cfg.SessionTTL)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	return signed, expires, err
}

func (s *Server) parseToken(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(s.cfg.JWTSecret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.deps.Now),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// requireAuth accepts a valid session cookie. Pages redirect to the login
// form, API calls get 401.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(cookieName)
		if err == nil {
			if claims, perr := s.parseToken(cookie.Value); perr == nil {
				c.Set(contextAdmin, claims.Subject)
				return next(c)
			}
		}
		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return c.Redirect(http.StatusSeeOther, "/login")
	}
}

func (s *Server) showLogin(c echo.Context) error {
	return s.render(c, http.StatusOK, "login.html", echo.Map{"Title": "Вход", "Username": ""})
}

func (s *Server) login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	if err := c.Validate(&form); err != nil {
		return s.render(c, http.StatusUnprocessableEntity, "login.html", echo.Map{
			"Title": "Вход", "Username": form.Username, "Error": "Введите логин и пароль",
		})
	}

	userOK := subtle.ConstantTimeCompare([]byte(form.Username), []byte(s.cfg.Username)) == 1
	passOK := s.deps.Hasher.Check(form.Password, s.cfg.PasswordHash)
	if !userOK || !passOK {
		s.log.Warn().Str("username", form.Username).Str("ip", c.RealIP()).Msg("Failed admin login")
		return s.render(c, http.StatusUnauthorized, "login.html", echo.Map{
			"Title": "Вход", "Username": form.Username, "Error": "Неверный логин или пароль",
		})
	}

	token, expires, err := s.issueToken(form.Username)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteStrictMode,
	})
	s.log.Info().Str("username", form.Username).Msg("Admin logged in")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return c.Redirect(http.StatusSeeOther, "/login")
}
