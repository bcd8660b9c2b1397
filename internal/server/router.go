package server

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fuzumoe/shoplist-api/internal/middleware"
	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/service"
)

// RouteRegistrar defines anything that can wire its routes into a Gin group.
type RouteRegistrar interface {
	// RegisterRoutes should add one or more routes on the provided router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegistrarFunc adapts a plain function to the RouteRegistrar interface.
type RegistrarFunc func(rg *gin.RouterGroup)

// RegisterRoutes calls f.
func (f RegistrarFunc) RegisterRoutes(rg *gin.RouterGroup) { f(rg) }

// RegisterValidations installs the custom field rules on gin's binding engine
// so that binding tags like "nospace" and "emailshape" work.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		model.RegisterCustomValidations(v)
	}
}

// RegisterRoutes wires up the public and protected route groups.
func RegisterRoutes(
	r *gin.Engine,
	auth service.AuthService,
	publicRegs []RouteRegistrar,
	protectedRegs []RouteRegistrar,
) {
	// Global middleware
	r.Use(gin.Logger(), gin.Recovery())

	RegisterValidations()

	public := r.Group("/")
	for _, reg := range publicRegs {
		reg.RegisterRoutes(public)
	}

	protected := r.Group("/", middleware.RequireAuth(auth))
	for _, reg := range protectedRegs {
		reg.RegisterRoutes(protected)
	}
}
