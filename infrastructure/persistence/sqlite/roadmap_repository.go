package sqlite

import (
	"context"
	"time"

	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

type roadmapRepository struct {
	q dbtx
}

func (r *roadmapRepository) Save(ctx context.Context, update *entities.RoadmapUpdate) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO roadmap_updates (id, project_id, author_id, title, body, is_initial, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		update.ID.String(), update.ProjectID.String(), update.AuthorID.String(),
		update.Title, update.Body, boolToInt(update.IsInitial), update.CreatedAt.UnixNano(),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("save roadmap update", err)
	}
	return nil
}

func (r *roadmapRepository) ListByProject(ctx context.Context, projectID valueobjects.IdeaID) ([]*entities.RoadmapUpdate, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, project_id, author_id, title, body, is_initial, created_at
		FROM roadmap_updates WHERE project_id = ?
		ORDER BY created_at ASC, id ASC`, projectID.String())
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list roadmap updates", err)
	}
	defer rows.Close()

	var updates []*entities.RoadmapUpdate
	for rows.Next() {
		var (
			update    entities.RoadmapUpdate
			id        string
			project   string
			authorID  string
			isInitial int
			createdAt int64
		)
		if err := rows.Scan(&id, &project, &authorID, &update.Title, &update.Body, &isInitial, &createdAt); err != nil {
			return nil, pkgerrors.NewDatabaseError("scan roadmap update", err)
		}
		if update.ID, err = valueobjects.NewUpdateIDFromString(id); err != nil {
			return nil, pkgerrors.NewDatabaseError("scan roadmap update", err)
		}
		if update.ProjectID, err = valueobjects.NewIdeaIDFromString(project); err != nil {
			return nil, pkgerrors.NewDatabaseError("scan roadmap update", err)
		}
		if update.AuthorID, err = valueobjects.NewUserIDFromString(authorID); err != nil {
			return nil, pkgerrors.NewDatabaseError("scan roadmap update", err)
		}
		update.IsInitial = isInitial != 0
		update.CreatedAt = time.Unix(0, createdAt).UTC()
		updates = append(updates, &update)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewDatabaseError("iterate roadmap updates", err)
	}
	return updates, nil
}

func (r *roadmapRepository) CountByProject(ctx context.Context, projectID valueobjects.IdeaID) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM roadmap_updates WHERE project_id = ?`, projectID.String()).Scan(&count)
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("count roadmap updates", err)
	}
	return count, nil
}
