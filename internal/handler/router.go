package handler

import (
	"net/http"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/handler/api"
	"meeting-room-approval/internal/handler/middleware"
	"meeting-room-approval/internal/handler/validation"
	"meeting-room-approval/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the route table needs.
type Handlers struct {
	fx.In

	Auth           *api.AuthHandler
	MeetingRequest *api.MeetingRequestHandler
	Registry       *api.RegistryHandler
	User           *api.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	validation.Register()
	setupMiddleware(engine, cfg, h.Logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := h.AuthMiddleware
	adminOnly := authMw.RequireAnyRole(user.RoleAdmin)
	approvers := authMw.RequireAnyRole(user.RoleAdmin, user.RoleHeadGA, user.RoleHeadOS)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		meetings := apiGroup.Group("/meeting-requests")
		meetings.Use(authMw.RequireAuth())
		{
			mr := h.MeetingRequest
			addRoutes(meetings, []route{
				{Method: http.MethodGet, Path: "", Handler: mr.List},
				{Method: http.MethodPost, Path: "", Handler: mr.Create},
				{Method: http.MethodGet, Path: "/availability", Handler: mr.Availability},
				{Method: http.MethodGet, Path: "/:id", Handler: mr.Get},
				{Method: http.MethodGet, Path: "/:id/history", Handler: mr.History},
				{Method: http.MethodPatch, Path: "/:id/approval", Handler: mr.ApplyApproval, Mw: []gin.HandlerFunc{approvers}},
				{Method: http.MethodPatch, Path: "/:id", Handler: mr.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: mr.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(authMw.RequireAuth())
		{
			rooms := authed.Group("/rooms")
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Registry.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Registry.GetRoom},
				{Method: http.MethodPost, Path: "", Handler: h.Registry.CreateRoom, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Registry.UpdateRoom, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Registry.Deactivate(registry.KindRoom), Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/bulk-delete", Handler: h.Registry.BulkDeactivate(registry.KindRoom), Mw: []gin.HandlerFunc{adminOnly}},
			})

			for _, kind := range []registry.Kind{registry.KindFacility, registry.KindDepartment} {
				addRoutes(authed.Group("/"+kind.Plural()), entryRoutes(h.Registry, kind, adminOnly))
			}

			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/options", Handler: h.Registry.Options},
			})

			users := authed.Group("/users")
			users.Use(adminOnly)
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.User.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.Delete},
				{Method: http.MethodPost, Path: "/bulk-delete", Handler: h.User.BulkDelete},
			})
		}
	}
}

func entryRoutes(rh *api.RegistryHandler, kind registry.Kind, adminOnly gin.HandlerFunc) []route {
	admin := []gin.HandlerFunc{adminOnly}
	return []route{
		{Method: http.MethodGet, Path: "", Handler: rh.ListEntries(kind)},
		{Method: http.MethodGet, Path: "/:id", Handler: rh.GetEntry(kind)},
		{Method: http.MethodPost, Path: "", Handler: rh.CreateEntry(kind), Mw: admin},
		{Method: http.MethodPatch, Path: "/:id", Handler: rh.UpdateEntry(kind), Mw: admin},
		{Method: http.MethodDelete, Path: "/:id", Handler: rh.Deactivate(kind), Mw: admin},
		{Method: http.MethodPost, Path: "/bulk-delete", Handler: rh.BulkDeactivate(kind), Mw: admin},
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
