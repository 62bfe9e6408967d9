package router

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"bloghub/internal/config"
	"bloghub/internal/handlers"
	"bloghub/internal/middleware"
	"bloghub/internal/services"
	"bloghub/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	sessionName   = "bloghub_session"
	sessionMaxAge = 7 * 24 * 60 * 60
)

// Deps is everything the HTTP layer needs from main.
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Provider services.IdentityProvider
	Logger   *slog.Logger
}

// New builds the gin engine with middleware, templates and routes.
func New(d Deps) (*gin.Engine, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	production := d.Config.IsProduction()

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders(production))

	renderer, err := loadTemplates(web.FS)
	if err != nil {
		return nil, err
	}
	r.HTMLRender = renderer

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	hashKey, blockKey, err := sessionKeys(d.Config.SessionSecret)
	if err != nil {
		return nil, err
	}
	store := cookie.NewStore(hashKey, blockKey)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteLaxMode,
	})

	RegisterRoutes(r, d, sessions.Sessions(sessionName, store))
	return r, nil
}

// RegisterRoutes mounts every route. Page routes run behind the session, principal and
// CSRF middleware; health and metrics do not touch the session.
func RegisterRoutes(r *gin.Engine, d Deps, sessionMiddleware gin.HandlerFunc) {
	blogService := services.NewBlogService(d.DB)
	commentService := services.NewCommentService(d.DB)
	userService := services.NewUserService(d.DB)

	indexHandler := handlers.NewIndexHandler(blogService)
	authHandler := handlers.NewAuthHandler(userService, d.Provider, d.Config.IsProduction())
	blogHandler := handlers.NewBlogHandler(blogService, commentService)
	commentHandler := handlers.NewCommentHandler(commentService)
	healthHandler := handlers.NewHealthHandler(d.DB)
	seoHandler := handlers.NewSEOHandler()

	r.GET("/healthz", healthHandler.Health)
	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	app := r.Group("/")
	app.Use(sessionMiddleware, middleware.LoadPrincipal(), middleware.CSRF())
	{
		app.GET("/", indexHandler.Index)
		app.GET("/login", authHandler.ShowLogin)
		app.GET("/logout", authHandler.Logout)
	}

	auth := app.Group("/auth")
	auth.Use(middleware.RateLimit(rate.Every(time.Second), 10))
	{
		auth.GET("/github", authHandler.GitHubLogin)
		auth.GET("/github/callback", authHandler.GitHubCallback)
	}

	blogs := app.Group("/blogs")
	blogs.Use(middleware.AuthRequired())
	{
		blogs.GET("/new", blogHandler.ShowCreate)
		blogs.POST("", blogHandler.Create)
		blogs.GET("/:blogId", blogHandler.Detail)
		blogs.GET("/:blogId/edit", blogHandler.ShowEdit)
		blogs.POST("/:blogId/update", blogHandler.Update)
		blogs.POST("/:blogId/delete", blogHandler.Delete)

		blogs.POST("/:blogId/comments", commentHandler.Create)
		blogs.POST("/:blogId/users/:userId/comments/:commentId", commentHandler.Upsert)
		blogs.POST("/:blogId/users/:userId/comments/:commentId/delete", commentHandler.Delete)
	}
}
