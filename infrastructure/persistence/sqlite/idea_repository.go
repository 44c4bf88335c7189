package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

type ideaRepository struct {
	q dbtx
}

func (r *ideaRepository) Save(ctx context.Context, idea *entities.Idea) error {
	tags, err := json.Marshal(idea.Tags)
	if err != nil {
		return pkgerrors.NewDatabaseError("encode tags", err)
	}

	_, err = r.q.ExecContext(ctx, `
		INSERT INTO ideas (id, author_id, title, body, tags, is_project, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			tags = excluded.tags,
			is_project = excluded.is_project`,
		idea.ID.String(), idea.AuthorID.String(), idea.Title, idea.Body,
		string(tags), boolToInt(idea.IsProject), idea.CreatedAt.UnixNano(),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("save idea", err)
	}
	return nil
}

func (r *ideaRepository) GetByID(ctx context.Context, id valueobjects.IdeaID) (*entities.Idea, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, author_id, title, body, tags, is_project, created_at
		FROM ideas WHERE id = ?`, id.String())

	idea, err := scanIdea(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pkgerrors.NewNotFoundError("idea")
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("scan idea", err)
	}
	return idea, nil
}

func (r *ideaRepository) ListAll(ctx context.Context) ([]*entities.Idea, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, author_id, title, body, tags, is_project, created_at
		FROM ideas ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list ideas", err)
	}
	defer rows.Close()
	return collectIdeas(rows)
}

func (r *ideaRepository) ListByAuthor(ctx context.Context, authorID valueobjects.UserID) ([]*entities.Idea, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, author_id, title, body, tags, is_project, created_at
		FROM ideas WHERE author_id = ? ORDER BY created_at DESC, id ASC`, authorID.String())
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list ideas by author", err)
	}
	defer rows.Close()
	return collectIdeas(rows)
}

func (r *ideaRepository) CountByAuthor(ctx context.Context, authorID valueobjects.UserID) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ideas WHERE author_id = ?`, authorID.String()).Scan(&count)
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("count ideas", err)
	}
	return count, nil
}

// Delete removes the idea and everything hanging off it: comments, roadmap
// updates, reaction edges on the idea and on its comments, and follow edges
// targeting it as a project. Callers run this inside a unit of work so the
// cascade is atomic.
func (r *ideaRepository) Delete(ctx context.Context, id valueobjects.IdeaID) error {
	ideaID := id.String()

	statements := []struct {
		op    string
		query string
	}{
		{"delete comment reactions", `DELETE FROM reaction_edges WHERE subject_kind = 'comment'
			AND subject_id IN (SELECT id FROM comments WHERE idea_id = ?)`},
		{"delete idea reactions", `DELETE FROM reaction_edges WHERE subject_kind = 'idea' AND subject_id = ?`},
		{"delete project follows", `DELETE FROM follow_edges WHERE target_kind = 'project' AND target_id = ?`},
		{"delete comments", `DELETE FROM comments WHERE idea_id = ?`},
		{"delete roadmap updates", `DELETE FROM roadmap_updates WHERE project_id = ?`},
		{"delete idea", `DELETE FROM ideas WHERE id = ?`},
	}

	for _, stmt := range statements {
		if _, err := r.q.ExecContext(ctx, stmt.query, ideaID); err != nil {
			return pkgerrors.NewDatabaseError(stmt.op, err)
		}
	}
	return nil
}

func collectIdeas(rows *sql.Rows) ([]*entities.Idea, error) {
	var ideas []*entities.Idea
	for rows.Next() {
		idea, err := scanIdea(rows.Scan)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("scan idea", err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewDatabaseError("iterate ideas", err)
	}
	return ideas, nil
}

func scanIdea(scan func(dest ...interface{}) error) (*entities.Idea, error) {
	var (
		idea      entities.Idea
		id        string
		authorID  string
		tags      string
		isProject int
		createdAt int64
	)
	if err := scan(&id, &authorID, &idea.Title, &idea.Body, &tags, &isProject, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if idea.ID, err = valueobjects.NewIdeaIDFromString(id); err != nil {
		return nil, err
	}
	if idea.AuthorID, err = valueobjects.NewUserIDFromString(authorID); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &idea.Tags); err != nil {
		return nil, err
	}
	idea.IsProject = isProject != 0
	idea.CreatedAt = time.Unix(0, createdAt).UTC()
	return &idea, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
