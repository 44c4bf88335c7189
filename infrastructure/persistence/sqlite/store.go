package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"ideahub-backend/application/ports"
	pkgerrors "ideahub-backend/pkg/errors"
)

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// same repository code serves both the shared store and an open transaction
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	avatar_ref    TEXT NOT NULL DEFAULT '',
	bio           TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	website_ref   TEXT NOT NULL DEFAULT '',
	joined_at     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS ideas (
	id         TEXT PRIMARY KEY,
	author_id  TEXT NOT NULL REFERENCES users(id),
	title      TEXT NOT NULL,
	body       TEXT NOT NULL,
	tags       TEXT NOT NULL DEFAULT '[]',
	is_project INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ideas_author ON ideas(author_id);
CREATE INDEX IF NOT EXISTS idx_ideas_created ON ideas(created_at DESC, id ASC);

CREATE TABLE IF NOT EXISTS comments (
	id         TEXT PRIMARY KEY,
	idea_id    TEXT NOT NULL REFERENCES ideas(id),
	author_id  TEXT NOT NULL REFERENCES users(id),
	body       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_comments_idea ON comments(idea_id);

CREATE TABLE IF NOT EXISTS roadmap_updates (
	id         TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES ideas(id),
	author_id  TEXT NOT NULL REFERENCES users(id),
	title      TEXT NOT NULL,
	body       TEXT NOT NULL,
	is_initial INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_updates_project ON roadmap_updates(project_id);

CREATE TABLE IF NOT EXISTS follow_edges (
	follower_id TEXT NOT NULL,
	target_id   TEXT NOT NULL,
	target_kind TEXT NOT NULL,
	created_at  INTEGER NOT NULL,
	PRIMARY KEY (follower_id, target_id, target_kind)
);
CREATE INDEX IF NOT EXISTS idx_follows_target ON follow_edges(target_id, target_kind);

CREATE TABLE IF NOT EXISTS reaction_edges (
	user_id      TEXT NOT NULL,
	subject_id   TEXT NOT NULL,
	subject_kind TEXT NOT NULL,
	kind         TEXT NOT NULL,
	created_at   INTEGER NOT NULL,
	PRIMARY KEY (user_id, subject_id, subject_kind, kind)
);
CREATE INDEX IF NOT EXISTS idx_reactions_subject ON reaction_edges(subject_id, subject_kind, kind);
`

// Store is the sqlite-backed entity store. It implements ports.Repositories
// for reads against the shared connection pool and ports.UnitOfWork for
// transactional mutations.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file and runs migrations. The DSN
// pragmas enable WAL, foreign keys, and an immediate transaction lock so
// read-check-write units of work serialize against each other.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_txlock=immediate&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Users returns the user repository bound to the shared connection
func (s *Store) Users() ports.UserRepository { return &userRepository{q: s.db} }

// Ideas returns the idea repository bound to the shared connection
func (s *Store) Ideas() ports.IdeaRepository { return &ideaRepository{q: s.db} }

// Comments returns the comment repository bound to the shared connection
func (s *Store) Comments() ports.CommentRepository { return &commentRepository{q: s.db} }

// Roadmap returns the roadmap repository bound to the shared connection
func (s *Store) Roadmap() ports.RoadmapRepository { return &roadmapRepository{q: s.db} }

// Graph returns the edge repository bound to the shared connection
func (s *Store) Graph() ports.GraphRepository { return &graphRepository{q: s.db} }

// Execute runs fn inside a single transaction. The transaction commits when
// fn returns nil and rolls back otherwise; repositories handed to fn are
// bound to the transaction.
func (s *Store) Execute(ctx context.Context, fn func(repos ports.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return pkgerrors.NewDatabaseError("begin transaction", err)
	}

	if err := fn(&txRepositories{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return pkgerrors.NewDatabaseError("rollback transaction", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return pkgerrors.NewDatabaseError("commit transaction", err)
	}
	return nil
}

// txRepositories binds every repository to one open transaction
type txRepositories struct {
	tx *sql.Tx
}

func (t *txRepositories) Users() ports.UserRepository       { return &userRepository{q: t.tx} }
func (t *txRepositories) Ideas() ports.IdeaRepository       { return &ideaRepository{q: t.tx} }
func (t *txRepositories) Comments() ports.CommentRepository { return &commentRepository{q: t.tx} }
func (t *txRepositories) Roadmap() ports.RoadmapRepository  { return &roadmapRepository{q: t.tx} }
func (t *txRepositories) Graph() ports.GraphRepository      { return &graphRepository{q: t.tx} }
