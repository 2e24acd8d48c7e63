package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/certibot/certibot/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := store.seedCertifications(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed certifications: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			first_name TEXT,
			last_name TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			user_id INTEGER,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			sender TEXT NOT NULL,
			content TEXT NOT NULL,
			metadata TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, id)`,
		`CREATE TABLE IF NOT EXISTS certifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			provider TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL,
			prep_time TEXT NOT NULL,
			exam_fee TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			icon TEXT NOT NULL,
			icon_color TEXT NOT NULL,
			tags TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_certifications_category ON certifications(category)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// seedCertifications loads the static catalog. Existing rows are left alone
// so re-running migrations on a persistent database is safe.
func (s *SQLiteStore) seedCertifications() error {
	for _, cert := range certificationSeed {
		tags, err := json.Marshal(cert.Tags)
		if err != nil {
			return err
		}
		_, err = s.db.Exec(
			`INSERT OR IGNORE INTO certifications (name, provider, category, description, prep_time, exam_fee, difficulty, icon, icon_color, tags)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			cert.Name, cert.Provider, cert.Category, cert.Description, cert.PrepTime,
			cert.ExamFee, cert.Difficulty, cert.Icon, cert.IconColor, string(tags))
		if err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateUser creates a new user and assigns its id.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *domain.User) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, role, first_name, last_name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.Email, user.PasswordHash, string(user.Role),
		user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetUser retrieves a user by id.
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUser(ctx, `WHERE id = ?`, id)
}

// GetUserByEmail retrieves a user by email.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getUser(ctx, `WHERE email = ?`, email)
}

// GetUserByUsername retrieves a user by username.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getUser(ctx, `WHERE username = ?`, username)
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	var user domain.User
	var role string
	var firstName, lastName sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, role, first_name, last_name, created_at, updated_at FROM users `+where,
		arg).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &role,
		&firstName, &lastName, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	user.FirstName = firstName.String
	user.LastName = lastName.String
	return &user, nil
}

// ListUsers retrieves all users ordered by id.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, email, password_hash, role, first_name, last_name, created_at, updated_at FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var role string
		var firstName, lastName sql.NullString
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &role,
			&firstName, &lastName, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		user.Role = domain.Role(role)
		user.FirstName = firstName.String
		user.LastName = lastName.String
		users = append(users, user)
	}
	return users, rows.Err()
}

// CreateSession creates a new session and assigns its id.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *domain.Session) error {
	var userID interface{}
	if session.UserID != nil {
		userID = *session.UserID
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, user_id, created_at) VALUES (?, ?, ?)`,
		session.SessionID, userID, session.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	session.ID = id
	return nil
}

// GetSession retrieves a session by its session id.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	var session domain.Session
	var userID sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, user_id, created_at FROM sessions WHERE session_id = ?`,
		sessionID).Scan(&session.ID, &session.SessionID, &userID, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		session.UserID = &userID.Int64
	}
	return &session, nil
}

// CreateMessage appends a message to a session and assigns its id.
func (s *SQLiteStore) CreateMessage(ctx context.Context, message *domain.Message) error {
	var metadata interface{}
	if message.Metadata != nil {
		data, err := json.Marshal(message.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadata = string(data)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, sender, content, metadata, created_at) VALUES (?, ?, ?, ?, ?)`,
		message.SessionID, string(message.Sender), message.Content, metadata, message.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	message.ID = id
	return nil
}

// GetMessages retrieves all messages for a session in insertion order.
func (s *SQLiteStore) GetMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, sender, content, metadata, created_at FROM messages WHERE session_id = ? ORDER BY id ASC`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var sender string
		var metadata sql.NullString
		if err := rows.Scan(&msg.ID, &msg.SessionID, &sender, &msg.Content, &metadata, &msg.CreatedAt); err != nil {
			return nil, err
		}
		msg.Sender = domain.Sender(sender)
		if metadata.Valid && metadata.String != "" {
			var md domain.MessageMetadata
			if err := json.Unmarshal([]byte(metadata.String), &md); err != nil {
				return nil, fmt.Errorf("failed to unmarshal message metadata: %w", err)
			}
			msg.Metadata = &md
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// ListCertifications retrieves the full catalog ordered by id.
func (s *SQLiteStore) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	return s.queryCertifications(ctx, ``)
}

// SearchCertifications returns catalog entries whose name, description,
// category, provider or any tag contains the query, case-insensitively.
func (s *SQLiteStore) SearchCertifications(ctx context.Context, query string) ([]domain.Certification, error) {
	certs, err := s.queryCertifications(ctx, ``)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(query)
	var matched []domain.Certification
	for _, cert := range certs {
		if certMatches(cert, term) {
			matched = append(matched, cert)
		}
	}
	return matched, nil
}

// GetCertificationsByCategory returns catalog entries with an exact
// case-insensitive category match.
func (s *SQLiteStore) GetCertificationsByCategory(ctx context.Context, category string) ([]domain.Certification, error) {
	return s.queryCertifications(ctx, `WHERE category = ? COLLATE NOCASE`, category)
}

func (s *SQLiteStore) queryCertifications(ctx context.Context, where string, args ...interface{}) ([]domain.Certification, error) {
	query := `SELECT id, name, provider, category, description, prep_time, exam_fee, difficulty, icon, icon_color, tags FROM certifications `
	query += where + ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []domain.Certification
	for rows.Next() {
		var cert domain.Certification
		var tags string
		if err := rows.Scan(&cert.ID, &cert.Name, &cert.Provider, &cert.Category, &cert.Description,
			&cert.PrepTime, &cert.ExamFee, &cert.Difficulty, &cert.Icon, &cert.IconColor, &tags); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &cert.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
		certs = append(certs, cert)
	}
	return certs, rows.Err()
}

func certMatches(cert domain.Certification, term string) bool {
	if strings.Contains(strings.ToLower(cert.Name), term) ||
		strings.Contains(strings.ToLower(cert.Description), term) ||
		strings.Contains(strings.ToLower(cert.Category), term) ||
		strings.Contains(strings.ToLower(cert.Provider), term) {
		return true
	}
	for _, tag := range cert.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
