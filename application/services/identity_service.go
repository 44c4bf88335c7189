package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ideahub-backend/application/ports"
	"ideahub-backend/domain/core/entities"
	"ideahub-backend/domain/core/valueobjects"
	"ideahub-backend/pkg/auth"
	pkgerrors "ideahub-backend/pkg/errors"
)

// IdentityService resolves credentials to user identities. Registration
// hashes the password with bcrypt; login looks the user up by email,
// compares against the stored hash, and issues a signed session token.
// Everything downstream consumes only the opaque user ID.
type IdentityService struct {
	uow    ports.UnitOfWork
	repos  ports.Repositories
	hasher *auth.PasswordHasher
	tokens *auth.JWTGenerator
	logger *zap.Logger
}

// NewIdentityService creates a new identity service
func NewIdentityService(
	uow ports.UnitOfWork,
	repos ports.Repositories,
	hasher *auth.PasswordHasher,
	tokens *auth.JWTGenerator,
	logger *zap.Logger,
) *IdentityService {
	return &IdentityService{
		uow:    uow,
		repos:  repos,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Session is the result of a successful register or login
type Session struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Register creates a new account and returns a live session. Username and
// email must both be unused.
func (s *IdentityService) Register(ctx context.Context, name, username, email, password string) (*Session, error) {
	if strings.TrimSpace(password) == "" {
		return nil, pkgerrors.NewValidationError("password cannot be empty")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to hash password").WithCause(err)
	}

	user, err := entities.NewUser(name, username, email, hash)
	if err != nil {
		return nil, err
	}

	err = s.uow.Execute(ctx, func(repos ports.Repositories) error {
		if existing, err := repos.Users().GetByUsername(ctx, user.Username); err == nil && existing != nil {
			return pkgerrors.NewConflictError("username is already taken")
		} else if err != nil && !pkgerrors.IsNotFound(err) {
			return err
		}
		if existing, err := repos.Users().GetByEmail(ctx, user.Email); err == nil && existing != nil {
			return pkgerrors.NewConflictError("email is already registered")
		} else if err != nil && !pkgerrors.IsNotFound(err) {
			return err
		}
		return repos.Users().Save(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("userID", user.ID.String()),
		zap.String("username", user.Username),
	)
	return s.newSession(user)
}

// Login verifies email/password credentials and returns a live session.
// Both an unknown email and a wrong password surface as the same
// Unauthenticated failure.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.repos.Users().GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NewUnauthenticatedError("invalid email or password")
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, pkgerrors.NewUnauthenticatedError("invalid email or password")
	}

	return s.newSession(user)
}

// Profile returns a user's public profile with derived idea, follower, and
// following counts. The viewer ID may be zero for unauthenticated requests,
// in which case the following flag is false.
func (s *IdentityService) Profile(ctx context.Context, username string, viewerID valueobjects.UserID) (*ProfileView, error) {
	user, err := s.repos.Users().GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	ideaCount, err := s.repos.Ideas().CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.repos.Graph().CountFollowers(ctx, user.ID.String(), valueobjects.FollowTargetUser)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.repos.Graph().CountFollowing(ctx, user.ID, valueobjects.FollowTargetUser)
	if err != nil {
		return nil, err
	}

	following := false
	if !viewerID.IsZero() {
		following, err = s.repos.Graph().HasFollow(ctx, viewerID, user.ID.String(), valueobjects.FollowTargetUser)
		if err != nil {
			return nil, err
		}
	}

	return &ProfileView{
		ID:             user.ID.String(),
		Name:           user.Name,
		Username:       user.Username,
		AvatarRef:      user.AvatarRef,
		Bio:            user.Bio,
		Location:       user.Location,
		WebsiteRef:     user.WebsiteRef,
		JoinedAt:       user.JoinedAt,
		IdeaCount:      ideaCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		Following:      following,
	}, nil
}

func (s *IdentityService) newSession(user *entities.User) (*Session, error) {
	token, err := s.tokens.GenerateToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to issue session token").WithCause(err)
	}
	return &Session{
		UserID:   user.ID.String(),
		Name:     user.Name,
		Username: user.Username,
		Token:    token,
	}, nil
}
