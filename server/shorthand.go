package server

import (
	"github.com/gin-gonic/gin"

	"github.com/RalfNorthman/form-and-plot/errors"
)

func GET[InputType any, OutputType any](
	router gin.IRoutes,
	path string,
	config *RouteConfig,
	handlerFunc func(input *InputType, ctx *gin.Context) (*OutputType, *errors.AppError),
) {
	router.GET(path, func(ctx *gin.Context) {
		ExecuteRoute(ctx, config, handlerFunc)
	})
}

func POST[InputType any, OutputType any](
	router gin.IRoutes,
	path string,
	config *RouteConfig,
	handlerFunc func(input *InputType, ctx *gin.Context) (*OutputType, *errors.AppError),
) {
	router.POST(path, func(ctx *gin.Context) {
		ExecuteRoute(ctx, config, handlerFunc)
	})
}
