package main

import (
	"context"

	"titan-server/internal/domain/project"
	"titan-server/internal/utils/platformerrors"
)

// DefaultProjectID is the public ID of the seeded catch-all project.
const DefaultProjectID = "proj_default0000000"

type DataInitializer struct {
	projectService *project.Service
}

// Install seeds the default project so personas created without an explicit
// project have a home. Reruns are no-ops.
func (d *DataInitializer) Install(ctx context.Context) error {
	_, err := d.projectService.GetByPublicID(ctx, DefaultProjectID)
	if err == nil {
		return nil
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		return err
	}

	proj := project.New(DefaultProjectID, "Default", "Default project for unassigned personas")
	if _, err := d.projectService.Create(ctx, proj); err != nil {
		return err
	}
	return nil
}
