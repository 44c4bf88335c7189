package sqlite

import (
	"context"
	"database/sql"
	"time"

	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

type commentRepository struct {
	q dbtx
}

func (r *commentRepository) Save(ctx context.Context, comment *entities.Comment) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO comments (id, idea_id, author_id, body, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		comment.ID.String(), comment.IdeaID.String(), comment.AuthorID.String(),
		comment.Body, comment.CreatedAt.UnixNano(),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("save comment", err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id valueobjects.CommentID) (*entities.Comment, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, idea_id, author_id, body, created_at
		FROM comments WHERE id = ?`, id.String())

	comment, err := scanComment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pkgerrors.NewNotFoundError("comment")
	}
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("scan comment", err)
	}
	return comment, nil
}

func (r *commentRepository) ListByIdea(ctx context.Context, ideaID valueobjects.IdeaID) ([]*entities.Comment, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, idea_id, author_id, body, created_at
		FROM comments WHERE idea_id = ? ORDER BY created_at ASC, id ASC`, ideaID.String())
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list comments", err)
	}
	defer rows.Close()

	var comments []*entities.Comment
	for rows.Next() {
		comment, err := scanComment(rows.Scan)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("scan comment", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewDatabaseError("iterate comments", err)
	}
	return comments, nil
}

func (r *commentRepository) CountByIdea(ctx context.Context, ideaID valueobjects.IdeaID) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE idea_id = ?`, ideaID.String()).Scan(&count)
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("count comments", err)
	}
	return count, nil
}

func (r *commentRepository) Delete(ctx context.Context, id valueobjects.CommentID) error {
	commentID := id.String()

	if _, err := r.q.ExecContext(ctx,
		`DELETE FROM reaction_edges WHERE subject_kind = 'comment' AND subject_id = ?`, commentID); err != nil {
		return pkgerrors.NewDatabaseError("delete comment reactions", err)
	}
	if _, err := r.q.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, commentID); err != nil {
		return pkgerrors.NewDatabaseError("delete comment", err)
	}
	return nil
}

func scanComment(scan func(dest ...interface{}) error) (*entities.Comment, error) {
	var (
		comment   entities.Comment
		id        string
		ideaID    string
		authorID  string
		createdAt int64
	)
	if err := scan(&id, &ideaID, &authorID, &comment.Body, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if comment.ID, err = valueobjects.NewCommentIDFromString(id); err != nil {
		return nil, err
	}
	if comment.IdeaID, err = valueobjects.NewIdeaIDFromString(ideaID); err != nil {
		return nil, err
	}
	if comment.AuthorID, err = valueobjects.NewUserIDFromString(authorID); err != nil {
		return nil, err
	}
	comment.CreatedAt = time.Unix(0, createdAt).UTC()
	return &comment, nil
}
