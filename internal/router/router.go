package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/colegio-nocedal/panol-api/internal/handler"
	"github.com/colegio-nocedal/panol-api/internal/middleware"
	"github.com/colegio-nocedal/panol-api/internal/service"
	"github.com/colegio-nocedal/panol-api/pkg/config"
	"github.com/colegio-nocedal/panol-api/pkg/logger"
	corsmiddleware "github.com/colegio-nocedal/panol-api/pkg/middleware/cors"
	reqidmiddleware "github.com/colegio-nocedal/panol-api/pkg/middleware/requestid"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Health    *handler.HealthHandler
	Student   *handler.StudentHandler
	Workshop  *handler.WorkshopHandler
	Group     *handler.GroupHandler
	Toolbox   *handler.ToolboxHandler
	Inventory *handler.InventoryHandler
	Loan      *handler.LoanHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
}

// New assembles the gin engine: global middleware, the public surface
// (login, health, metrics, docs) and the JWT-protected API under
// cfg.APIPrefix.
func New(cfg *config.Config, logr *zap.Logger, auth *service.AuthService, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", h.Health.Check)
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(auth))

	protected.GET("/dashboard", h.Dashboard.Summary)
	protected.GET("/dashboard/metricas", h.Dashboard.Metrics)
	protected.GET("/dashboard/resumen-talleres", h.Dashboard.WorkshopSummary)
	protected.GET("/dashboard/prestamos-recientes", h.Dashboard.RecentLoans)
	protected.GET("/dashboard/alertas", h.Dashboard.Alerts)
	protected.GET("/dashboard/estadisticas", h.Workshop.Stats)

	protected.GET("/talleres", h.Workshop.List)
	protected.POST("/talleres", h.Workshop.Create)
	protected.GET("/talleres/estadisticas", h.Workshop.Stats)
	protected.GET("/talleres/:codigo", h.Workshop.Get)
	protected.PUT("/talleres/:codigo", h.Workshop.Update)
	protected.GET("/talleres/:codigo/composicion", h.Workshop.Composition)

	protected.GET("/cursos", h.Workshop.Courses)
	protected.POST("/cursos", h.Workshop.CreateCourse)
	protected.GET("/cursos/:codigo", h.Workshop.Course)

	protected.GET("/alumnos", h.Student.List)
	protected.POST("/alumnos", h.Student.Create)
	protected.GET("/alumnos/:rut", h.Student.Get)
	protected.PUT("/alumnos/:rut", h.Student.Update)
	protected.GET("/alumnos/:rut/grupos", h.Student.Groups)
	protected.GET("/alumnos/:rut/historial", h.Student.LoanHistory)
	protected.PATCH("/alumnos/:rut/estado", h.Student.UpdateStatus)

	protected.GET("/grupos", h.Group.List)
	protected.POST("/grupos", h.Group.Create)
	protected.GET("/grupos/sin-prestamo", h.Group.ListWithoutLoan)
	protected.GET("/grupos/:id", h.Group.Get)
	protected.PUT("/grupos/:id/estado", h.Group.UpdateStatus)
	protected.GET("/grupos/:id/tiene-prestamo", h.Group.HasLoan)
	protected.GET("/grupos/:id/integrantes", h.Group.Members)
	protected.POST("/grupos/:id/integrantes", h.Group.AddMember)
	protected.DELETE("/grupos/:id/integrantes/:rut", h.Group.RemoveMember)

	protected.GET("/cajas", h.Toolbox.List)
	protected.POST("/cajas", h.Toolbox.Create)
	protected.GET("/cajas/disponibles", h.Toolbox.ListAvailable)
	protected.GET("/cajas/:codigo", h.Toolbox.Get)
	protected.GET("/cajas/:codigo/disponible", h.Toolbox.Available)
	protected.GET("/cajas/:codigo/contenido", h.Toolbox.Contents)
	protected.GET("/cajas/:codigo/historial", h.Toolbox.History)
	protected.PATCH("/cajas/:codigo/estado", h.Toolbox.UpdateStatus)

	protected.GET("/inventario", h.Inventory.Catalog)
	protected.POST("/inventario", h.Inventory.CreateItem)
	protected.POST("/inventario/faltantes", h.Inventory.ReportMissing)
	protected.PATCH("/inventario/unidades/:inv_id/estado", h.Inventory.UpdateUnitStatus)
	protected.GET("/inventario/:codigo", h.Inventory.GetItem)
	protected.GET("/inventario/:codigo/unidades", h.Inventory.Units)
	protected.GET("/inventario/:codigo/disponibles", h.Inventory.AvailableUnits)

	protected.GET("/prestamos", h.Loan.List)
	protected.POST("/prestamos/asignar", h.Loan.Assign)
	protected.GET("/prestamos/:id", h.Loan.Get)
	protected.POST("/prestamos/:id/devolver", h.Loan.Return)
	protected.GET("/revision/:prestamo_id", h.Loan.ReviewChecklist)

	protected.GET("/reportes/prestamos", h.Report.Loans)
	protected.GET("/reportes/prestamos/exportar", h.Report.ExportLoans)
	protected.GET("/reportes/items-problematicos", h.Report.Problems)
	protected.GET("/reportes/historial", h.Report.History)
	protected.GET("/reportes/inventario", h.Report.Inventory)
	protected.GET("/reportes/inventario/exportar", h.Report.ExportInventory)
	protected.GET("/reportes/estadisticas", h.Workshop.Stats)

	return r
}
