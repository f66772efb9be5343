package router

import (
	"github.com/gin-gonic/gin"

	"github.com/stolovaya/canteen-api/internal/handler"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Auth    *handler.AuthHandler
	Menu    *handler.MenuHandler
	Order   *handler.OrderHandler
	Cook    *handler.CookHandler
	Note    *handler.NoteHandler
	Parent  *handler.ParentHandler
	Admin   *handler.AdminHandler
	Metrics *handler.MetricsHandler
}

// Setup registers every route of the canteen API on the engine.
func Setup(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	menu := r.Group("/menu")
	{
		menu.GET("/:day", h.Menu.Day)
		menu.POST("/add", h.Menu.Add)
		menu.POST("/delete", h.Menu.Delete)
	}

	r.POST("/order", h.Order.Order)
	r.POST("/review", h.Order.Review)

	r.POST("/note", h.Note.Add)
	r.GET("/notes/:student_id", h.Note.List)
	r.DELETE("/note/:id", h.Note.Delete)

	cook := r.Group("/cook")
	{
		cook.GET("/orders_today", h.Cook.OrdersToday)
		cook.POST("/mark_given", h.Cook.MarkGiven)
		cook.GET("/reviews", h.Cook.Reviews)
		cook.GET("/notes_today", h.Cook.NotesToday)
	}

	parent := r.Group("/parent")
	{
		parent.POST("/link_child", h.Parent.LinkChild)
		parent.POST("/link_child_full", h.Parent.LinkChildFull)
		parent.GET("/children/:parent_id", h.Parent.Children)
		parent.GET("/orders/:student_id", h.Parent.StudentOrders)
		parent.GET("/reviews/:student_id", h.Parent.StudentReviews)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/users", h.Admin.Users)
		admin.POST("/users/delete", h.Admin.DeleteUser)
		admin.POST("/users/role", h.Admin.ChangeRole)
		admin.GET("/stats", h.Admin.Stats)
		admin.POST("/clear", h.Admin.Clear)
	}
}
