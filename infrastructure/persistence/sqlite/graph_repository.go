package sqlite

import (
	"context"

	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	pkgerrors "ideahub-backend/pkg/errors"
)

type graphRepository struct {
	q dbtx
}

func (r *graphRepository) InsertFollow(ctx context.Context, edge entities.FollowEdge) error {
	// INSERT OR IGNORE makes the follow idempotent per (follower, target, kind)
	_, err := r.q.ExecContext(ctx, `
		INSERT OR IGNORE INTO follow_edges (follower_id, target_id, target_kind, created_at)
		VALUES (?, ?, ?, ?)`,
		edge.FollowerID.String(), edge.TargetID, string(edge.TargetKind), edge.CreatedAt.UnixNano(),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("insert follow edge", err)
	}
	return nil
}

func (r *graphRepository) DeleteFollow(ctx context.Context, followerID valueobjects.UserID, targetID string, kind valueobjects.FollowTargetKind) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM follow_edges WHERE follower_id = ? AND target_id = ? AND target_kind = ?`,
		followerID.String(), targetID, string(kind),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("delete follow edge", err)
	}
	return nil
}

func (r *graphRepository) HasFollow(ctx context.Context, followerID valueobjects.UserID, targetID string, kind valueobjects.FollowTargetKind) (bool, error) {
	var exists int
	err := r.q.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM follow_edges WHERE follower_id = ? AND target_id = ? AND target_kind = ?)`,
		followerID.String(), targetID, string(kind)).Scan(&exists)
	if err != nil {
		return false, pkgerrors.NewDatabaseError("check follow edge", err)
	}
	return exists != 0, nil
}

func (r *graphRepository) CountFollowers(ctx context.Context, targetID string, kind valueobjects.FollowTargetKind) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM follow_edges WHERE target_id = ? AND target_kind = ?`,
		targetID, string(kind)).Scan(&count)
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("count followers", err)
	}
	return count, nil
}

func (r *graphRepository) CountFollowing(ctx context.Context, followerID valueobjects.UserID, kind valueobjects.FollowTargetKind) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM follow_edges WHERE follower_id = ? AND target_kind = ?`,
		followerID.String(), string(kind)).Scan(&count)
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("count following", err)
	}
	return count, nil
}

func (r *graphRepository) ListFollowedTargets(ctx context.Context, followerID valueobjects.UserID, kind valueobjects.FollowTargetKind) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT target_id FROM follow_edges WHERE follower_id = ? AND target_kind = ?`,
		followerID.String(), string(kind))
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list followed targets", err)
	}
	defer rows.Close()

	var targets []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, pkgerrors.NewDatabaseError("scan followed target", err)
		}
		targets = append(targets, id)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewDatabaseError("iterate followed targets", err)
	}
	return targets, nil
}

func (r *graphRepository) InsertReaction(ctx context.Context, edge entities.ReactionEdge) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT OR IGNORE INTO reaction_edges (user_id, subject_id, subject_kind, kind, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		edge.UserID.String(), edge.SubjectID, string(edge.SubjectKind), string(edge.Kind), edge.CreatedAt.UnixNano(),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("insert reaction edge", err)
	}
	return nil
}

func (r *graphRepository) DeleteReaction(ctx context.Context, userID valueobjects.UserID, subjectID string, subjectKind valueobjects.ReactionSubjectKind, kind valueobjects.ReactionKind) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM reaction_edges WHERE user_id = ? AND subject_id = ? AND subject_kind = ? AND kind = ?`,
		userID.String(), subjectID, string(subjectKind), string(kind),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("delete reaction edge", err)
	}
	return nil
}

func (r *graphRepository) HasReaction(ctx context.Context, userID valueobjects.UserID, subjectID string, subjectKind valueobjects.ReactionSubjectKind, kind valueobjects.ReactionKind) (bool, error) {
	var exists int
	err := r.q.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM reaction_edges WHERE user_id = ? AND subject_id = ? AND subject_kind = ? AND kind = ?)`,
		userID.String(), subjectID, string(subjectKind), string(kind)).Scan(&exists)
	if err != nil {
		return false, pkgerrors.NewDatabaseError("check reaction edge", err)
	}
	return exists != 0, nil
}

func (r *graphRepository) CountReactions(ctx context.Context, subjectID string, subjectKind valueobjects.ReactionSubjectKind, kind valueobjects.ReactionKind) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reaction_edges WHERE subject_id = ? AND subject_kind = ? AND kind = ?`,
		subjectID, string(subjectKind), string(kind)).Scan(&count)
	if err != nil {
		return 0, pkgerrors.NewDatabaseError("count reactions", err)
	}
	return count, nil
}
