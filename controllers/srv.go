// controllers/srv.go
package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"Gin_redis_rental_registry/app"
	"Gin_redis_rental_registry/registry"
	"Gin_redis_rental_registry/session"

	"github.com/google/uuid"
)

type Srv struct {
	Reg       *registry.Registry
	Sess      session.Store
	WebOrigin string
	Cfg       app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Reg:       a.Registry,
		Sess:      a.Sess,
		WebOrigin: a.Config.WebOrigin,
		Cfg:       a.Config,
	}
}

// --- helpers ---

// 统一设置业务会话 Cookie
func (s *Srv) setAppCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   int(maxAge / time.Second),
	})
}

// 登录成功：创建会话并下发 Cookie
func (s *Srv) issueSession(ctx context.Context, w http.ResponseWriter, name string) error {
	id := uuid.NewString()
	if err := s.Sess.Create(ctx, id, name); err != nil {
		return err
	}
	s.setAppCookie(w, id, s.Cfg.SessionTTL)
	return nil
}
