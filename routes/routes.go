package routes

import (
	"Gin_redis_rental_registry/app"
	"Gin_redis_rental_registry/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	sc := controllers.GetSessionController(s)
	itemCtl := controllers.NewItemController(s)

	// 复用的中间件
	authMW := app.AuthRequired(a.Sess)
	adminMW := app.AdminOnly(a.Config.AdminName)

	// ------------------------------
	// 会话（登录公开，其余受保护）
	// ------------------------------
	sess := r.Group("/session")
	{
		sess.POST("", sc.Login)
	}
	sessAuth := sess.Group("", authMW)
	{
		sessAuth.GET("/whoami", sc.Whoami)
		sessAuth.POST("/logout", sc.Logout)
	}

	// ------------------------------
	// 上架（仅管理员）
	// ------------------------------
	itemsAdmin := r.Group("/api/items", authMW, adminMW)
	{
		itemsAdmin.POST("", itemCtl.CreateItem)
	}

	// ------------------------------
	// 浏览 / 租借 / 过期回收
	// ------------------------------
	items := r.Group("/api/items", authMW)
	{
		items.GET("", itemCtl.ListItems)
		items.GET("/:index", itemCtl.GetItem)
		items.POST("/:index/expire", itemCtl.Expire)
	}

	api := r.Group("/api", authMW)
	{
		api.GET("/availability", itemCtl.Availability)
		api.POST("/rentals", itemCtl.Rent)
	}
}
