package main

import (
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionName = "session"

// sessionID returns the request's session id, minting and saving one when
// the cookie doesn't carry it yet.
func (s *Server) sessionID(e echo.Context) (string, error) {
	sess, err := session.Get(sessionName, e)
	if err != nil {
		return "", err
	}

	if sid, ok := sess.Values["sid"].(string); ok && sid != "" {
		return sid, nil
	}

	sid := uuid.NewString()

	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}
	sess.Values["sid"] = sid

	if err := sess.Save(e.Request(), e.Response()); err != nil {
		return "", err
	}

	return sid, nil
}

// sessionToken reports the token stored for the request's session, if any.
func (s *Server) sessionToken(e echo.Context) (string, bool) {
	sess, err := session.Get(sessionName, e)
	if err != nil {
		return "", false
	}

	sid, ok := sess.Values["sid"].(string)
	if !ok {
		return "", false
	}

	return s.store.Get(sid)
}
