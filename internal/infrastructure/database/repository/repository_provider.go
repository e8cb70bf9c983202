package repository

import (
	"titan-server/internal/infrastructure/database/repository/chatrepo"
	"titan-server/internal/infrastructure/database/repository/contentrepo"
	"titan-server/internal/infrastructure/database/repository/personarepo"
	"titan-server/internal/infrastructure/database/repository/projectrepo"
	"titan-server/internal/infrastructure/database/repository/roadmaprepo"
	"titan-server/internal/infrastructure/database/repository/webaccountrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	projectrepo.NewProjectGormRepository,
	roadmaprepo.NewFeatureGormRepository,
	roadmaprepo.NewMilestoneGormRepository,
	roadmaprepo.NewGoalGormRepository,
	personarepo.NewPersonaGormRepository,
	chatrepo.NewChatMessageGormRepository,
	contentrepo.NewContentItemGormRepository,
	webaccountrepo.NewWebAccountGormRepository,
)
