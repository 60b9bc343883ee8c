package controllers

import (
	"net/http"
	"strings"

	"Gin_redis_rental_registry/app"

	"github.com/gin-gonic/gin"
)

func clearAppCookie(c *gin.Context, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

type SessionController struct{ *Srv }

func GetSessionController(s *Srv) *SessionController { return &SessionController{Srv: s} }

// POST /session
// 登录即领取身份：名字在这里变成整个系统使用的调用者身份。
func (sc *SessionController) Login(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	name := strings.ToLower(strings.TrimSpace(in.Name))
	if name == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "name is required"})
		return
	}

	if err := sc.issueSession(c.Request.Context(), c.Writer, name); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{
		"name":    name,
		"isAdmin": name == sc.Cfg.AdminName,
	})
}

// POST /session/logout
func (sc *SessionController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.AppSessionCookie); err == nil && ck.Value != "" {
		_ = sc.Sess.Delete(c.Request.Context(), ck.Value)
	}
	clearAppCookie(c, strings.HasPrefix(sc.WebOrigin, "https://"))
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /session/whoami
func (sc *SessionController) Whoami(c *gin.Context) {
	name := app.Identity(c)
	c.JSON(http.StatusOK, app.H{
		"name":    name,
		"isAdmin": name == sc.Cfg.AdminName,
	})
}
