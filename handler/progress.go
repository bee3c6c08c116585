package handler

import (
	"Wayfarer/config"
	"Wayfarer/middleware"
	"Wayfarer/models"
	"Wayfarer/pkg/context"
	"Wayfarer/pkg/response"
	"Wayfarer/service"
	"Wayfarer/types"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Progress struct {
	ProgressService service.IProgressService
	Config          *config.Config
}

func (p *Progress) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	g := r.Group("/v1/circuit-progress", authorize)
	g.POST("/start", context.Wrap(p.Start))
	g.POST("/visit", context.Wrap(p.Visit))
	g.GET("", context.Wrap(p.List))
	g.GET("/:circuit_id", context.Wrap(p.Get))
}

func (p *Progress) Start(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	var req types.StartProgressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("body", "请求参数错误")
	}

	progress, created, err := p.ProgressService.Start(c.Request.Context(), userID, req.CircuitID, models.CircuitKind(req.CircuitKind))
	if err != nil {
		return err
	}
	if created {
		response.Created(c, progress)
		return nil
	}
	response.Success(c, progress)
	return nil
}

func (p *Progress) Visit(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	var req types.VisitWaypointReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("body", "请求参数错误")
	}

	result, err := p.ProgressService.RecordVisit(c.Request.Context(), userID, req.CircuitID, req.WaypointID, models.CircuitKind(req.CircuitKind))
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (p *Progress) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	circuitID, err := strconv.ParseUint(c.Param("circuit_id"), 10, 64)
	if err != nil {
		return response.Validation("circuit_id", "circuit_id 格式错误")
	}
	var req types.GetProgressReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.Validation("circuit_kind", "请求参数错误")
	}

	progress, err := p.ProgressService.GetProgress(c.Request.Context(), userID, circuitID, models.CircuitKind(req.CircuitKind))
	if err != nil {
		return err
	}
	response.Success(c, progress)
	return nil
}

func (p *Progress) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	list, err := p.ProgressService.ListProgress(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}
