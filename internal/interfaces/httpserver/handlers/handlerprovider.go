package handlers

import (
	"github.com/google/wire"

	"titan-server/internal/interfaces/httpserver/handlers/chathandler"
	"titan-server/internal/interfaces/httpserver/handlers/contenthandler"
	"titan-server/internal/interfaces/httpserver/handlers/personahandler"
	"titan-server/internal/interfaces/httpserver/handlers/projecthandler"
	"titan-server/internal/interfaces/httpserver/handlers/roadmaphandler"
	"titan-server/internal/interfaces/httpserver/handlers/systemhandler"
	"titan-server/internal/interfaces/httpserver/handlers/webaccounthandler"
)

var HandlerProvider = wire.NewSet(
	projecthandler.NewProjectHandler,
	roadmaphandler.NewRoadmapHandler,
	personahandler.NewPersonaHandler,
	chathandler.NewChatHandler,
	contenthandler.NewContentHandler,
	webaccounthandler.NewWebAccountHandler,
	systemhandler.NewSystemHandler,
)
