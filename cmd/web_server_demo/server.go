package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"

	oauth "github.com/webex-samples/webex-oauth-golang"
	"github.com/webex-samples/webex-oauth-golang/internal/helpers"
)

type Server struct {
	httpd *http.Server
	e     *echo.Echo
	oauth *oauth.Client
	store TokenStore

	// state is the single pending authorization state for this process.
	// Set once at startup, read-only afterwards, so only one flow can be
	// in flight per process lifetime.
	state string
}

func newServer(cfg *config, oauthClient *oauth.Client) (*Server, error) {
	state := cfg.State
	if state == "" {
		var err error
		state, err = helpers.GenerateToken(10)
		if err != nil {
			return nil, fmt.Errorf("could not generate state token: %w", err)
		}
	}

	secret := cfg.SessionSecret
	if secret == "" {
		var err error
		secret, err = helpers.GenerateToken(32)
		if err != nil {
			return nil, fmt.Errorf("could not generate session secret: %w", err)
		}
	}

	e := echo.New()

	e.Use(slogecho.New(slog.Default()))
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(secret))))

	renderer, err := newRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	s := &Server{
		e:     e,
		oauth: oauthClient,
		store: NewMemoryTokenStore(),
		state: state,
		httpd: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: e,
		},
	}

	e.GET("/", func(e echo.Context) error {
		return e.Redirect(302, "/index.html")
	})
	e.GET("/index.html", s.handleIndex)
	e.GET("/oauth", s.handleOAuthCallback)
	e.GET("/logout", s.handleLogout)
	e.GET("/listrooms", s.handleListRooms)
	e.Static("/public", cfg.PublicDir)

	return s, nil
}

func (s *Server) run() error {
	if err := s.httpd.ListenAndServe(); err != nil {
		return err
	}

	return nil
}
