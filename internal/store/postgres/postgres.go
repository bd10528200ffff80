package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/devlink/devlink/internal/model"
	"github.com/devlink/devlink/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and
// verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
// Posts and profiles keep their embedded collections in JSONB columns and
// are written back whole on every mutation.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users       { return &users{db: s.db} }
func (s *pgStore) Posts() store.Posts       { return &posts{db: s.db} }
func (s *pgStore) Profiles() store.Profiles { return &profiles{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

// uniqueViolation maps a duplicate-key failure to model.ErrConflict.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return model.ErrConflict
	}
	return err
}

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	var created time.Time
	row := u.db.QueryRowContext(ctx, `
        INSERT INTO users (user_id, name, email, password, avatar)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at
    `, m.ID, m.Name, m.Email, m.Password, m.Avatar)
	if err := row.Scan(&created); err != nil {
		return nil, uniqueViolation(err)
	}
	out := *m
	out.CreatedAt = created
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	var out model.User
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, name, email, password, avatar, created_at
        FROM users WHERE user_id=$1
    `, userID)
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Password, &out.Avatar, &out.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var out model.User
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, name, email, password, avatar, created_at
        FROM users WHERE email=$1
    `, email)
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.Password, &out.Avatar, &out.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (u *users) Delete(ctx context.Context, userID string) error {
	res, err := u.db.ExecContext(ctx, `DELETE FROM users WHERE user_id=$1`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Posts ---

type posts struct{ db *sql.DB }

func (p *posts) Create(ctx context.Context, m *model.Post) (*model.Post, error) {
	likes, comments, err := marshalPostCollections(m)
	if err != nil {
		return nil, err
	}
	var created time.Time
	row := p.db.QueryRowContext(ctx, `
        INSERT INTO posts (post_id, user_id, name, avatar, text, likes, comments)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at
    `, m.ID, m.UserID, m.Name, m.Avatar, m.Text, likes, comments)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out := *m
	out.CreatedAt = created
	return &out, nil
}

func (p *posts) Get(ctx context.Context, postID string) (*model.Post, error) {
	row := p.db.QueryRowContext(ctx, `
        SELECT post_id, user_id, name, avatar, text, likes, comments, created_at
        FROM posts WHERE post_id=$1
    `, postID)
	return scanPost(row)
}

func (p *posts) List(ctx context.Context) ([]*model.Post, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT post_id, user_id, name, avatar, text, likes, comments, created_at
        FROM posts ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, post)
	}
	return res, rows.Err()
}

func (p *posts) Update(ctx context.Context, m *model.Post) (*model.Post, error) {
	likes, comments, err := marshalPostCollections(m)
	if err != nil {
		return nil, err
	}
	res, err := p.db.ExecContext(ctx, `
        UPDATE posts SET text=$2, likes=$3, comments=$4 WHERE post_id=$1
    `, m.ID, m.Text, likes, comments)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return m, nil
}

func (p *posts) Delete(ctx context.Context, postID string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id=$1`, postID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (p *posts) DeleteByUser(ctx context.Context, userID string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM posts WHERE user_id=$1`, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*model.Post, error) {
	var out model.Post
	var likes, comments []byte
	if err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.Avatar, &out.Text, &likes, &comments, &out.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	if err := json.Unmarshal(likes, &out.Likes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(comments, &out.Comments); err != nil {
		return nil, err
	}
	return &out, nil
}

func marshalPostCollections(m *model.Post) ([]byte, []byte, error) {
	likes := m.Likes
	if likes == nil {
		likes = []model.Like{}
	}
	comments := m.Comments
	if comments == nil {
		comments = []model.Comment{}
	}
	lb, err := json.Marshal(likes)
	if err != nil {
		return nil, nil, err
	}
	cb, err := json.Marshal(comments)
	if err != nil {
		return nil, nil, err
	}
	return lb, cb, nil
}

// --- Profiles ---

type profiles struct{ db *sql.DB }

func (p *profiles) Upsert(ctx context.Context, m *model.Profile) (*model.Profile, error) {
	doc, err := marshalProfileDoc(m)
	if err != nil {
		return nil, err
	}
	var created time.Time
	row := p.db.QueryRowContext(ctx, `
        INSERT INTO profiles (user_id, doc)
        VALUES ($1,$2)
        ON CONFLICT (user_id) DO UPDATE SET doc=EXCLUDED.doc
        RETURNING created_at
    `, m.UserID, doc)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out := *m
	out.CreatedAt = created
	return &out, nil
}

func (p *profiles) GetByUser(ctx context.Context, userID string) (*model.Profile, error) {
	row := p.db.QueryRowContext(ctx, `
        SELECT doc, created_at FROM profiles WHERE user_id=$1
    `, userID)
	return scanProfile(row)
}

func (p *profiles) List(ctx context.Context) ([]*model.Profile, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT doc, created_at FROM profiles ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, profile)
	}
	return res, rows.Err()
}

func (p *profiles) Delete(ctx context.Context, userID string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id=$1`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	var doc []byte
	var created time.Time
	if err := row.Scan(&doc, &created); err != nil {
		return nil, notFound(err)
	}
	var out model.Profile
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil, err
	}
	out.CreatedAt = created
	return &out, nil
}

func marshalProfileDoc(m *model.Profile) ([]byte, error) {
	cp := *m
	if cp.Skills == nil {
		cp.Skills = []string{}
	}
	if cp.Experience == nil {
		cp.Experience = []model.Experience{}
	}
	if cp.Education == nil {
		cp.Education = []model.Education{}
	}
	return json.Marshal(&cp)
}
