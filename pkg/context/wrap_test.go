package context

import (
	"Wayfarer/pkg/response"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(h HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { c.Set(CtxUserID, uint64(7)) }, Wrap(h))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestWrap(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		return response.Validation("waypoint_id", "途经点不属于该路线")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"code":400,"msg":"途经点不属于该路线","field":"waypoint_id","data":null}`, w.Body.String())

	w = serve(func(c *gin.Context) error { return errors.New("boom") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(func(c *gin.Context) error {
		uid, err := GetUserID(c)
		if err != nil {
			return err
		}
		response.Success(c, uid)
		return nil
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"msg":"success","data":7}`, w.Body.String())
}
