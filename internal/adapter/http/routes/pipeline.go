package routes

import (
	"net/http"

	"voltflow_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFlow     = "/flow"
	PathLeads    = "/leads"
	PathClients  = "/clients"
	PathJobs     = "/jobs"
	PathQuotes   = "/quotes"
	PathInvoices = "/invoices"
	PathActivity = "/activity"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Flow     *handlers.FlowHandler
	Leads    *handlers.LeadHandler
	Clients  *handlers.ClientHandler
	Jobs     *handlers.JobHandler
	Quotes   *handlers.QuoteHandler
	Invoices *handlers.InvoiceHandler
	Payments *handlers.InvoicePaymentHandler
	Activity *handlers.ActivityHandler
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addFlowRoutes(rg *gin.RouterGroup, h *handlers.FlowHandler) {
	flow := rg.Group(PathFlow + "/:module")
	{
		flow.GET("/stages", h.ListStages)
		flow.GET("/stages/:status", h.GetStage)
		flow.GET("/transitions", h.CheckTransition)
		flow.GET("/actions", h.NextActions)
	}
}

func addLeadRoutes(rg *gin.RouterGroup, h *handlers.LeadHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", h.CreateLead)
		leads.GET("", h.ListLeads)
		leads.GET("/stats", h.LeadStats)
		leads.GET("/:id", h.GetLead)
		leads.PUT("/:id", h.UpdateLead)
		leads.DELETE("/:id", h.DeleteLead)
		leads.PATCH("/:id/status", h.ChangeLeadStatus)
		leads.POST("/:id/convert", h.ConvertLead)
		leads.DELETE("/:id/client", h.DeleteLeadClient)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
		clients.PATCH("/:id/status", h.UpdateClientStatus)
	}
}

func addJobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.PUT("/:id", h.UpdateJob)
		jobs.DELETE("/:id", h.DeleteJob)
		jobs.PATCH("/:id/status", h.UpdateJobStatus)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/stats", h.QuoteStats)
		quotes.GET("/:id", h.GetQuote)
		quotes.PUT("/:id", h.UpdateQuote)
		quotes.DELETE("/:id", h.DeleteQuote)
		quotes.PATCH("/:id/status", h.UpdateQuoteStatus)
		quotes.POST("/:id/convert", h.ConvertQuote)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler, payments *handlers.InvoicePaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.CreateInvoice)
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
		invoices.PATCH("/:id/status", h.UpdateInvoiceStatus)
		invoices.POST("/:id/payments", payments.PayInvoice)
		invoices.GET("/:id/payments", payments.ListInvoicePayments)
	}
}

func addActivityRoutes(rg *gin.RouterGroup, h *handlers.ActivityHandler) {
	activity := rg.Group(PathActivity)
	{
		activity.GET("", h.RecentActivity)
		activity.GET("/:module/:id", h.EntityActivity)
	}
}
