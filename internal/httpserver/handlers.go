package httpserver

import (
	"net/http"

	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/pricing"
	subscriptionsvc "coffee-subscription/internal/service/subscription"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type handlers struct {
	logger        zerolog.Logger
	catalogs      CatalogService
	subscriptions SubscriptionService
	advisor       AdvisorService
}

func (h *handlers) getCatalog(c *gin.Context) {
	cat, err := h.catalogs.Catalog(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

type machineSavings struct {
	From24To36 int `json:"from24To36"`
	From24To48 int `json:"from24To48"`
}

type machineResponse struct {
	domain.Machine
	CapacityLabel string         `json:"capacityLabel,omitempty"`
	Savings       machineSavings `json:"savings"`
}

func (h *handlers) getMachine(c *gin.Context) {
	m, err := h.catalogs.Machine(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	resp := machineResponse{
		Machine: m,
		Savings: machineSavings{
			From24To36: pricing.Savings(m, domain.Duration24, domain.Duration36),
			From24To48: pricing.Savings(m, domain.Duration24, domain.Duration48),
		},
	}
	if m.HasCapacity() {
		resp.CapacityLabel = m.CapacityLabel()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) getContracts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogs.Contracts())
}

func (h *handlers) createSession(c *gin.Context) {
	view, err := h.subscriptions.Create(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *handlers) getSession(c *gin.Context) {
	view, err := h.subscriptions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handlers) deleteSession(c *gin.Context) {
	if err := h.subscriptions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateRequest struct {
	Actions []subscriptionsvc.UpdateAction `json:"actions" binding:"required,min=1,dive"`
}

func (h *handlers) updateSession(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	view, err := h.subscriptions.Update(c.Request.Context(), c.Param("id"), subscriptionsvc.UpdateInput{Actions: req.Actions})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handlers) getSummary(c *gin.Context) {
	sum, err := h.subscriptions.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *handlers) getQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.advisor.Questions()})
}

func (h *handlers) openAdvisor(c *gin.Context) {
	view, err := h.advisor.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *handlers) closeAdvisor(c *gin.Context) {
	if err := h.advisor.Close(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type answerRequest struct {
	Answer string `json:"answer"`
}

func (h *handlers) answerAdvisor(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	view, err := h.advisor.Answer(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type chooseRequest struct {
	MachineID string `json:"machineId" binding:"required"`
}

func (h *handlers) chooseRecommendation(c *gin.Context) {
	var req chooseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	rec, err := h.advisor.Choose(c.Request.Context(), c.Param("id"), req.MachineID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, subscriptionsvc.NewView(rec))
}

// recommendRequest carries one answer per advisor question.
type recommendRequest struct {
	Answers []domain.SurveyAnswer `json:"answers" binding:"required,len=3"`
}

func (h *handlers) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}
	recs, err := h.advisor.Recommend(c.Request.Context(), req.Answers)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
