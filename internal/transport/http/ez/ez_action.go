// Package ez registers typed endpoints in one line: bind the input, run the
// handler, map the typed failure onto the response envelope.
package ez

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	resp "jobtrack/internal/transport/http/response"
)

type Binder string

const (
	BindJSON  Binder = "json"  // bind request body
	BindQuery Binder = "query" // bind ?a=b query params
	BindNone  Binder = "none"  // handler reads c.Param itself
)

// Action couples an input type I and output type O to one route.
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Handler func(c *gin.Context, in *I) (O, error)
}

func Register[I any, O any](g *gin.RouterGroup, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, bindErr.Error()))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			c.JSON(http.StatusOK, resp.FromError(err))
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		g.GET(a.Path, h)
	case http.MethodPatch:
		g.PATCH(a.Path, h)
	case http.MethodPut:
		g.PUT(a.Path, h)
	case http.MethodDelete:
		g.DELETE(a.Path, h)
	default:
		g.POST(a.Path, h)
	}
}
