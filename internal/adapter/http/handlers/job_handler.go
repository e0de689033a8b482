package handlers

import (
	"net/http"

	request "voltflow_crm/internal/adapter/http/dto/request"
	response "voltflow_crm/internal/adapter/http/dto/response"
	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	job, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// ListJobs filters by ?client_id= and ?status=.
func (h *JobHandler) ListJobs(c *gin.Context) {
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return
	}
	filter := entities.JobFilter{ClientID: clientID}
	if raw := c.Query("status"); raw != "" {
		status, err := entities.ParseJobStatus(raw)
		if err != nil {
			writeError(c, mapFlowError(err))
			return
		}
		filter.Status = status
	}
	jobs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.JobUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	job, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	status, err := entities.ParseJobStatus(payload.Status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	job, err := h.usecase.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
