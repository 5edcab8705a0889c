package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/recommend"
	sessionrepo "coffee-subscription/internal/repository/session"
	advisorsvc "coffee-subscription/internal/service/advisor"
	catalogsvc "coffee-subscription/internal/service/catalog"
	subscriptionsvc "coffee-subscription/internal/service/subscription"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type CatalogService interface {
	Catalog(ctx context.Context) (*catalog.Catalog, error)
	Machine(ctx context.Context, id string) (domain.Machine, error)
	Contracts() catalogsvc.ContractOptions
}

type SubscriptionService interface {
	Create(ctx context.Context) (subscriptionsvc.View, error)
	Get(ctx context.Context, id string) (subscriptionsvc.View, error)
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, in subscriptionsvc.UpdateInput) (subscriptionsvc.View, error)
	Summary(ctx context.Context, id string) (subscriptionsvc.SummaryView, error)
}

type AdvisorService interface {
	Questions() []recommend.Question
	Open(ctx context.Context, sessionID string) (advisorsvc.View, error)
	Answer(ctx context.Context, sessionID, answer string) (advisorsvc.View, error)
	Close(ctx context.Context, sessionID string) error
	Choose(ctx context.Context, sessionID, machineID string) (sessionrepo.Record, error)
	Recommend(ctx context.Context, answers []domain.SurveyAnswer) ([]domain.Recommendation, error)
}

// Deps holds the services behind the API.
type Deps struct {
	CatalogSvc      CatalogService
	SubscriptionSvc SubscriptionService
	AdvisorSvc      AdvisorService
}

func (d Deps) validate() error {
	if d.CatalogSvc == nil || d.SubscriptionSvc == nil || d.AdvisorSvc == nil {
		return errors.New("httpserver: catalog, subscription and advisor services are required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, deps Deps, opts Options) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(requestLogger(logger), recordMetrics(), gin.Recovery())
	if mw := corsMiddleware(opts.CORSAllowedOrigins); mw != nil {
		router.Use(mw)
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(opts.DB, deps.CatalogSvc))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &handlers{
		logger:        logger,
		catalogs:      deps.CatalogSvc,
		subscriptions: deps.SubscriptionSvc,
		advisor:       deps.AdvisorSvc,
	}

	api := router.Group("/api/v1")
	api.GET("/catalog", h.getCatalog)
	api.GET("/catalog/machines/:id", h.getMachine)
	api.GET("/contracts", h.getContracts)

	api.POST("/sessions", rateLimit(logger, opts.SessionCreatesPerMinute), h.createSession)
	api.GET("/sessions/:id", h.getSession)
	api.DELETE("/sessions/:id", h.deleteSession)
	api.POST("/sessions/:id/actions", h.updateSession)
	api.GET("/sessions/:id/summary", h.getSummary)

	api.GET("/advisor/questions", h.getQuestions)
	api.POST("/sessions/:id/advisor", h.openAdvisor)
	api.DELETE("/sessions/:id/advisor", h.closeAdvisor)
	api.POST("/sessions/:id/advisor/answers", h.answerAdvisor)
	api.POST("/sessions/:id/advisor/choose", h.chooseRecommendation)

	api.POST("/recommendations", h.recommend)

	router.NoRoute(func(c *gin.Context) {
		writeError(c, logger, http.StatusNotFound, "ResourceNotFound", "route not found")
	})

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	var allowed []string
	all := false
	for _, o := range origins {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			all = true
		default:
			allowed = append(allowed, o)
		}
	}
	if !all && len(allowed) == 0 {
		return nil
	}

	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if all {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowed
	}
	return cors.New(cfg)
}
