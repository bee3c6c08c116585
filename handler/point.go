package handler

import (
	"Wayfarer/config"
	"Wayfarer/middleware"
	"Wayfarer/pkg/context"
	"Wayfarer/pkg/response"
	"Wayfarer/service"
	"Wayfarer/types"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Point struct {
	RewardService service.IRewardService
	Config        *config.Config
}

func (p *Point) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	pointGroup := r.Group("/v1/points", authorize)
	pointGroup.GET("/balance", context.Wrap(p.Balance))
	pointGroup.GET("/records", context.Wrap(p.GetRecords))
}

func (p *Point) Balance(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	resp, err := p.RewardService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Point) GetRecords(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(401, err.Error())
	}
	var req types.ListPointRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindQueryError(err)
	}

	resp, err := p.RewardService.ListPointRecords(c.Request.Context(), userID, req.Cursor, req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// bindQueryError 校验失败时定位到出错的字段, 类型解析失败时无法区分字段
func bindQueryError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "Limit" {
		return response.Validation("limit", "limit 不能超过 100")
	}
	return response.Validation("query", "请求参数错误")
}
