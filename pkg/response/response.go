package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一返回结构
type Response struct {
	Code  int    `json:"code"`
	Msg   string `json:"msg"`
	Field string `json:"field,omitempty"`
	Data  any    `json:"data"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// Created 新建资源时返回 201
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(HTTPStatus(code), Response{
		Code: code,
		Msg:  msg,
	})
}

// HTTPStatus 业务码落在 4xx/5xx 区间时直接作为 HTTP 状态码
func HTTPStatus(code int) int {
	if code >= 400 && code < 600 {
		return code
	}
	return http.StatusOK
}
