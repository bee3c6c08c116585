package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code  int
	Msg   string
	Field string
	Err   error
}

func (e *BizError) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *BizError) Unwrap() error {
	return e.Err
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// Validation 参数校验失败, field 为出错字段
func Validation(field, msg string) *BizError {
	return &BizError{Code: http.StatusBadRequest, Msg: msg, Field: field}
}

func NotFound(msg string) *BizError {
	return &BizError{Code: http.StatusNotFound, Msg: msg}
}

// Conflict 状态不允许当前操作
func Conflict(msg string) *BizError {
	return &BizError{Code: http.StatusConflict, Msg: msg}
}

// Internal 存储层等内部错误, 原始错误保留在 Err 中
func Internal(err error) *BizError {
	return &BizError{Code: http.StatusInternalServerError, Msg: "系统异常", Err: err}
}

// IsCode 判断错误链上是否有指定业务码的 BizError
func IsCode(err error, code int) bool {
	var be *BizError
	return errors.As(err, &be) && be.Code == code
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var be *BizError
			if errors.As(err, &be) {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, err.Error())
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
