package usecase

import (
	"context"
	"errors"

	"dental-care-server/internal/converter"
	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/delivery/http/middleware"
	"dental-care-server/internal/domain/entity"
	"dental-care-server/internal/domain/repository"
	"dental-care-server/internal/service"
	"dental-care-server/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context) (*dto.UserListResponse, error)
	PromoteToAdmin(ctx context.Context, id uuid.UUID) error
	AdminStatus(ctx context.Context, email string) (*dto.AdminStatusResponse, error)
	// IssueToken signs an access token for email, but only when a user
	// record exists for it.
	IssueToken(ctx context.Context, email string) (*dto.TokenResponse, error)
}

type userUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	auditService service.AuditService
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		auditService: auditService,
	}
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := &entity.User{
		Email: req.Email,
		Name:  req.Name,
		Role:  entity.RoleNone,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) List(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

// PromoteToAdmin grants the admin role to the user with the given id.
func (u *userUsecase) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	rows, err := u.userRepo.PromoteToAdmin(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to promote user %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	actor, _ := middleware.GetUserEmailFromContext(ctx)
	u.auditService.LogUpdate(ctx, actor, entity.AuditActionUserPromote, "user", id.String(),
		entity.JSON{"role": entity.RoleNone}, entity.JSON{"role": entity.RoleAdmin})

	u.log.Infof("User promoted to admin: id=%s, by=%s", id, actor)
	return nil
}

// AdminStatus reports whether the email belongs to an admin. An unknown
// email is simply not an admin, not an error.
func (u *userUsecase) AdminStatus(ctx context.Context, email string) (*dto.AdminStatusResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to look up user %s: %+v", email, err)
		return nil, err
	}

	return &dto.AdminStatusResponse{
		IsAdmin: user != nil && user.IsAdmin(),
	}, nil
}

func (u *userUsecase) IssueToken(ctx context.Context, email string) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to look up user %s: %+v", email, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	token, err := u.jwtService.GenerateToken(email)
	if err != nil {
		u.log.Warnf("Failed to sign token for %s: %+v", email, err)
		return nil, err
	}

	return &dto.TokenResponse{AccessToken: token}, nil
}
