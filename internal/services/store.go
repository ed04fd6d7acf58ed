// Package services contains the docflow domain operations. A Store owns the
// repositories and the session, and exposes one service per concern. Every
// mutation goes through a named service operation; operations that touch
// more than one collection (mutate, then audit) run inside the repository
// manager's exclusive section.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/docflow/internal/config"
	"github.com/dmitrijs2005/docflow/internal/logging"
	"github.com/dmitrijs2005/docflow/internal/models"
	"github.com/dmitrijs2005/docflow/internal/repositories/repomanager"
	"github.com/google/uuid"
)

// Session is the single interactive identity plus the client metadata stamped
// on audit entries.
type Session struct {
	mu     sync.RWMutex
	userID string

	ClientIP  string
	UserAgent string
}

// UserID returns the current user's id, or "" when nobody is signed in.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// SetUserID switches the current user. An empty id clears it.
func (s *Session) SetUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = id
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// Store is the application state: repositories, session and services.
type Store struct {
	repos   repomanager.RepositoryManager
	session *Session
	log     logging.Logger
	now     func() time.Time
	newID   func() string
	strict  bool
	recent  int

	Documents     *DocumentService
	Workflows     *WorkflowService
	Audit         *AuditService
	Signatures    *SignatureService
	Catalog       *CatalogService
	Users         *UserService
	Notifications *NotificationService
	Dashboard     *DashboardService
}

// NewStore builds a Store over m using cfg for session metadata and engine
// mode.
func NewStore(m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger, opts ...Option) *Store {
	if log == nil {
		log = logging.Nop{}
	}

	s := &Store{
		repos: m,
		session: &Session{
			ClientIP:  cfg.ClientIP,
			UserAgent: cfg.UserAgent,
		},
		log:    log,
		now:    time.Now,
		newID:  newUUID,
		strict: cfg.StrictApproval,
		recent: cfg.RecentActivity,
	}
	for _, o := range opts {
		o(s)
	}

	s.Documents = &DocumentService{store: s}
	s.Workflows = &WorkflowService{store: s}
	s.Audit = &AuditService{store: s}
	s.Signatures = &SignatureService{store: s}
	s.Catalog = &CatalogService{store: s}
	s.Users = &UserService{store: s}
	s.Notifications = &NotificationService{store: s}
	s.Dashboard = &DashboardService{store: s}

	return s
}

// Session returns the store's session.
func (s *Store) Session() *Session {
	return s.session
}

// Repositories exposes the underlying repository manager.
func (s *Store) Repositories() repomanager.RepositoryManager {
	return s.repos
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// currentUser resolves the session user against the users repository. It
// returns nil when nobody is signed in or the user no longer exists.
func (s *Store) currentUser(ctx context.Context) *models.User {
	id := s.session.UserID()
	if id == "" {
		return nil
	}
	u, err := s.repos.Users().Get(ctx, id)
	if err != nil {
		return nil
	}
	return u
}

// newAuditEntry stamps an entry with id, time, actor and client metadata.
func (s *Store) newAuditEntry(u *models.User, action, documentID, number, title string) *models.AuditLog {
	return &models.AuditLog{
		ID:             s.newID(),
		Timestamp:      s.now(),
		UserID:         u.ID,
		UserName:       u.Name,
		Action:         action,
		DocumentID:     documentID,
		DocumentNumber: number,
		DocumentTitle:  title,
		IPAddress:      s.session.ClientIP,
		UserAgent:      s.session.UserAgent,
	}
}
