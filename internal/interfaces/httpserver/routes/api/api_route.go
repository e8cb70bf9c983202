package api

import (
	"github.com/gin-gonic/gin"

	"titan-server/internal/interfaces/httpserver/routes/api/contentitems"
	"titan-server/internal/interfaces/httpserver/routes/api/personas"
	"titan-server/internal/interfaces/httpserver/routes/api/projects"
	"titan-server/internal/interfaces/httpserver/routes/api/roadmap"
	"titan-server/internal/interfaces/httpserver/routes/api/system"
	"titan-server/internal/interfaces/httpserver/routes/api/webaccounts"
)

// ApiRoute groups every /api sub-route
type ApiRoute struct {
	projects    *projects.ProjectRoute
	roadmap     *roadmap.RoadmapRoute
	personas    *personas.PersonaRoute
	content     *contentitems.ContentRoute
	webAccounts *webaccounts.WebAccountRoute
	system      *system.SystemRoute
}

func NewApiRoute(
	projectRoute *projects.ProjectRoute,
	roadmapRoute *roadmap.RoadmapRoute,
	personaRoute *personas.PersonaRoute,
	contentRoute *contentitems.ContentRoute,
	webAccountRoute *webaccounts.WebAccountRoute,
	systemRoute *system.SystemRoute,
) *ApiRoute {
	return &ApiRoute{
		projects:    projectRoute,
		roadmap:     roadmapRoute,
		personas:    personaRoute,
		content:     contentRoute,
		webAccounts: webAccountRoute,
		system:      systemRoute,
	}
}

// RegisterRoutes mounts all sub-routes under /api
func (r *ApiRoute) RegisterRoutes(router gin.IRouter) {
	apiRouter := router.Group("/api")

	r.projects.RegisterRoutes(apiRouter)
	r.roadmap.RegisterRoutes(apiRouter)
	r.personas.RegisterRoutes(apiRouter)
	r.content.RegisterRoutes(apiRouter)
	r.webAccounts.RegisterRoutes(apiRouter)
	r.system.RegisterRoutes(apiRouter)
}
