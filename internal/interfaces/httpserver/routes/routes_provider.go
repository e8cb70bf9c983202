package routes

import (
	"github.com/google/wire"

	"titan-server/internal/interfaces/httpserver/routes/api"
	"titan-server/internal/interfaces/httpserver/routes/api/contentitems"
	"titan-server/internal/interfaces/httpserver/routes/api/personas"
	"titan-server/internal/interfaces/httpserver/routes/api/projects"
	"titan-server/internal/interfaces/httpserver/routes/api/roadmap"
	"titan-server/internal/interfaces/httpserver/routes/api/system"
	"titan-server/internal/interfaces/httpserver/routes/api/webaccounts"
)

var RouteProvider = wire.NewSet(
	projects.NewProjectRoute,
	roadmap.NewRoadmapRoute,
	personas.NewPersonaRoute,
	contentitems.NewContentRoute,
	webaccounts.NewWebAccountRoute,
	system.NewSystemRoute,
	api.NewApiRoute,
)
