package i

import "github.com/gin-gonic/gin"

// Controller registers a group of routes on the router's /v1 groups.
// Protected routes run behind the bearer token middleware.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
