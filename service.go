package billmate

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/billmate/billmate-go/access"
	"github.com/billmate/billmate-go/client"
	"github.com/billmate/billmate-go/models"
	"github.com/billmate/billmate-go/query"
	"github.com/billmate/billmate-go/session"
)

// Cache key operations. List keys append normalized filter parameters,
// so invalidating the operation prefix drops every cached page/filter
// combination of that list.
const (
	opMe          = "auth/me"
	opGuest       = "auth/guest"
	opInvitations = "invitations"
)

func opAccount(accountID string) string  { return "accounts/" + accountID }
func opEntities(accountID string) string { return opAccount(accountID) + "/entities" }
func opRoles(accountID string) string    { return opAccount(accountID) + "/roles" }
func opUsers(accountID string) string    { return opAccount(accountID) + "/users" }

// invalidateAccount drops the account overview and every account-scoped
// list entry. The list prefix is separator-terminated so account "1"
// does not sweep account "12".
func (s *Service) invalidateAccount(accountID string) {
	s.cache.Invalidate(opAccount(accountID))
	s.cache.InvalidatePrefix(opAccount(accountID) + "/")
}

// Option configures the Service.
type Option func(*config)

type config struct {
	storage    session.Storage
	logger     *zap.SugaredLogger
	clientOpts []client.Option
	clock      func() time.Time
}

// WithStorage sets the persistence backend for session snapshots.
// Default is in-memory (no persistence across runs).
func WithStorage(storage session.Storage) Option {
	return func(c *config) { c.storage = storage }
}

// WithLogger sets the logger passed down to the API client.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *config) { c.logger = logger }
}

// WithClientOptions forwards extra options to the underlying API client.
func WithClientOptions(opts ...client.Option) Option {
	return func(c *config) { c.clientOpts = append(c.clientOpts, opts...) }
}

// WithClock overrides the cache's time source (tests).
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.clock = now }
}

// Service composes the API client, the query cache, the session store and
// the capability checker into the operations a dashboard front end needs.
// Reads go through the cache with per-operation staleness; mutations
// invalidate the cache keys they make stale.
type Service struct {
	client  *client.Adapter
	cache   *query.Cache
	session *session.Store
	access  *access.Checker
}

// Open creates a Service for the given API endpoint.
func Open(endpoint string, opts ...Option) (*Service, error) {
	cfg := &config{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(cfg)
	}

	store, err := session.Open(cfg.storage)
	if err != nil {
		return nil, err
	}

	var cacheOpts []query.CacheOption
	if cfg.clock != nil {
		cacheOpts = append(cacheOpts, query.WithClock(cfg.clock))
	}
	cache := query.NewCache(cacheOpts...)

	clientOpts := append([]client.Option{
		client.WithLogger(cfg.logger),
		// 401 invalidates the one session source and the cached
		// identity entries; the error still propagates to the caller.
		client.WithUnauthorizedHook(func() {
			store.Clear()
			cache.Invalidate(opMe)
			cache.Invalidate(opGuest)
		}),
	}, cfg.clientOpts...)

	api, err := client.New(endpoint, clientOpts...)
	if err != nil {
		return nil, err
	}

	// Pre-seed the cache from the persisted snapshot so a restarted
	// process renders without a network round trip.
	if id := store.Identity(); id != nil {
		cache.Put(opMe, id, query.TTLPinned)
	}
	if guest := store.Guest(); guest != nil {
		cache.Put(opGuest, guest, query.TTLPinned)
	}

	return &Service{
		client:  api,
		cache:   cache,
		session: store,
		access:  access.NewChecker(store),
	}, nil
}

// Client exposes the underlying API client for uncached calls.
func (s *Service) Client() client.Client { return s.client }

// Session exposes the authentication-state store.
func (s *Service) Session() *session.Store { return s.session }

// Access exposes the capability checker.
func (s *Service) Access() *access.Checker { return s.access }

// IsAuthenticated is the route-guard predicate, derived from the single
// session source.
func (s *Service) IsAuthenticated() bool { return s.session.IsAuthenticated() }

// ---- Auth ----

// SignUp registers a new user.
func (s *Service) SignUp(ctx context.Context, req models.SignUpRequest) error {
	return s.client.SignUp(ctx, req)
}

// SignIn authenticates and installs the returned identity as the current
// session. The guest entry is dropped: identity and guest are mutually
// exclusive.
func (s *Service) SignIn(ctx context.Context, req models.SignInRequest) (*models.Identity, error) {
	identity, err := s.client.SignIn(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.session.SetIdentity(identity, s.client.SessionToken()); err != nil {
		return nil, err
	}
	s.cache.Put(opMe, identity, query.TTLPinned)
	s.cache.Invalidate(opGuest)
	return identity, nil
}

// SignOut terminates the session server-side and clears all local state.
// Local state is cleared even when the server call fails.
func (s *Service) SignOut(ctx context.Context) error {
	var err error
	if id := s.session.Identity(); id != nil {
		err = s.client.SignOut(ctx, id.ID)
	}
	s.session.Clear()
	s.cache.Clear()
	return err
}

// RequestPasswordReset asks the server to mail a reset token.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	return s.client.RequestPasswordReset(ctx, email)
}

// ResetPassword completes a password reset.
func (s *Service) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return s.client.ResetPassword(ctx, req)
}

// Me returns the current identity, cached until sign-out or 401.
func (s *Service) Me(ctx context.Context) (*models.Identity, error) {
	return query.Lookup(ctx, s.cache, opMe, query.TTLPinned,
		func(ctx context.Context) (*models.Identity, error) {
			identity, err := s.client.Me(ctx)
			if err != nil {
				return nil, err
			}
			if err := s.session.SetIdentity(identity, s.client.SessionToken()); err != nil {
				return nil, err
			}
			return identity, nil
		})
}

// Guest returns the anonymous capability set, cached until sign-in. When
// a session is already authenticated the fetch is skipped and nil is
// returned: guest and identity states are mutually exclusive.
func (s *Service) Guest(ctx context.Context) (*models.GuestAccess, error) {
	if s.session.Identity() != nil {
		return nil, nil
	}
	return query.Lookup(ctx, s.cache, opGuest, query.TTLPinned,
		func(ctx context.Context) (*models.GuestAccess, error) {
			guest, err := s.client.GuestAccess(ctx)
			if err != nil {
				return nil, err
			}
			if err := s.session.SetGuest(guest); err != nil {
				return nil, err
			}
			return guest, nil
		})
}

// ---- Accounts ----

// Account returns the account overview.
func (s *Service) Account(ctx context.Context, accountID string) (*models.Account, error) {
	return query.Lookup(ctx, s.cache, opAccount(accountID), query.TTLList,
		func(ctx context.Context) (*models.Account, error) {
			return s.client.GetAccount(ctx, accountID)
		})
}

// AccountEntities returns one page of the account's entities. The cache
// key includes the normalized filter, so equivalent filters share an
// entry.
func (s *Service) AccountEntities(ctx context.Context, accountID string, filter models.EntityFilter) (*models.Page[models.Entity], error) {
	key := query.Key(opEntities(accountID), filter.Values())
	return query.Lookup(ctx, s.cache, key, query.TTLList,
		func(ctx context.Context) (*models.Page[models.Entity], error) {
			return s.client.ListAccountEntities(ctx, accountID, filter)
		})
}

// AccountRoles returns one page of the account's roles.
func (s *Service) AccountRoles(ctx context.Context, accountID string, filter models.RoleFilter) (*models.Page[models.Role], error) {
	key := query.Key(opRoles(accountID), filter.Values())
	return query.Lookup(ctx, s.cache, key, query.TTLList,
		func(ctx context.Context) (*models.Page[models.Role], error) {
			return s.client.ListAccountRoles(ctx, accountID, filter)
		})
}

// AccountUsers returns one page of the account's memberships.
func (s *Service) AccountUsers(ctx context.Context, accountID string, filter models.UserFilter) (*models.Page[models.AccountUser], error) {
	key := query.Key(opUsers(accountID), filter.Values())
	return query.Lookup(ctx, s.cache, key, query.TTLList,
		func(ctx context.Context) (*models.Page[models.AccountUser], error) {
			return s.client.ListAccountUsers(ctx, accountID, filter)
		})
}

// ---- Organizations and entities ----

// CreateOrganization creates a standalone organization.
func (s *Service) CreateOrganization(ctx context.Context, create models.OrganizationCreate) (*models.Organization, error) {
	org, err := s.client.CreateOrganization(ctx, create)
	if err != nil {
		return nil, err
	}
	s.invalidateAccount(create.AccountID)
	return org, nil
}

// UpdateOrganization applies a partial update. Organizations render
// inside entity rows everywhere, so all account-scoped entries are
// dropped.
func (s *Service) UpdateOrganization(ctx context.Context, orgID string, update models.OrganizationUpdate) (*models.Organization, error) {
	org, err := s.client.UpdateOrganization(ctx, orgID, update)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePrefix("accounts/")
	return org, nil
}

// CreateEntity creates an entity referencing an existing organization and
// invalidates the account's cached entity lists and overview.
func (s *Service) CreateEntity(ctx context.Context, create models.EntityCreate) (*models.Entity, error) {
	entity, err := s.client.CreateEntity(ctx, create)
	if err != nil {
		return nil, err
	}
	s.invalidateAccount(create.AccountID)
	return entity, nil
}

// CreateEntityWithOrganization runs the two-step organization-then-entity
// creation. See client.Adapter.CreateEntityWithOrganization for the
// non-atomicity caveat.
func (s *Service) CreateEntityWithOrganization(ctx context.Context, create models.EntityWithOrganizationCreate) (*models.Entity, error) {
	entity, err := s.client.CreateEntityWithOrganization(ctx, create)
	if err != nil {
		return nil, err
	}
	s.invalidateAccount(create.AccountID)
	return entity, nil
}

// ---- Invitations ----

// Invitations returns the invitation list, cached on the short
// invitation staleness window.
func (s *Service) Invitations(ctx context.Context) ([]models.Invitation, error) {
	return query.Lookup(ctx, s.cache, opInvitations, query.TTLInvitations,
		func(ctx context.Context) ([]models.Invitation, error) {
			return s.client.ListInvitations(ctx)
		})
}

// InviteUser sends an invitation and invalidates the cached list.
func (s *Service) InviteUser(ctx context.Context, create models.InvitationCreate) (*models.Invitation, error) {
	invitation, err := s.client.InviteUser(ctx, create)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidatePrefix(opInvitations)
	return invitation, nil
}

// AcceptInvitation redeems an invitation token.
func (s *Service) AcceptInvitation(ctx context.Context, accept models.InvitationAccept) error {
	if err := s.client.AcceptInvitation(ctx, accept); err != nil {
		return err
	}
	s.cache.InvalidatePrefix(opInvitations)
	return nil
}
