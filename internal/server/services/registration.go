package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/dbx"
	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/auth"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/repomanager"
)

const emailInUseMessage = "Email already in use"

// PasswordPolicy holds the registration password rules.
type PasswordPolicy struct {
	MinLength              int
	RequireDigit           bool
	RequireUppercase       bool
	RequireNonAlphanumeric bool
}

type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RegistrationService creates local accounts.
type RegistrationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	policy      PasswordPolicy
	logger      logging.Logger
}

func NewRegistrationService(db *sql.DB, m repomanager.RepositoryManager, policy PasswordPolicy, logger logging.Logger) *RegistrationService {
	return &RegistrationService{db: db, repomanager: m, policy: policy, logger: logger.With("module", "registration")}
}

// Validate reports every violated rule, not just the first.
func (s *RegistrationService) Validate(in RegisterInput) models.ValidationResult {
	var v models.ValidationResult

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		v.Add("Email", "Email is required")
	case !isEmail(email):
		v.Add("Email", "Email is not a valid email address")
	}

	if in.Password == "" {
		v.Add("Password", "Password is required")
	} else {
		for _, msg := range s.policy.violations(in.Password) {
			v.Add("Password", msg)
		}
	}

	if in.Password != in.ConfirmPassword {
		v.Add("ConfirmPassword", "The password and confirmation password do not match")
	}

	return v
}

// Register validates in and creates the account holding models.DefaultRole.
// Rule violations and a taken email are reported in the ValidationResult.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) (*models.User, models.ValidationResult, error) {
	v := s.Validate(in)
	if !v.OK() {
		return nil, v, nil
	}

	email := strings.TrimSpace(in.Email)

	_, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	switch {
	case err == nil:
		v.Add("Email", emailInUseMessage)
		return nil, v, nil
	case !errors.Is(err, common.ErrorNotFound):
		return nil, v, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, v, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{UserName: email, Email: email, PasswordHash: hash}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.repomanager.Roles(tx).AddUserToRole(ctx, user.ID, models.DefaultRole)
	})
	if err != nil {
		// lost a race with a concurrent registration of the same email
		if errors.Is(err, common.ErrorAlreadyExists) {
			v.Add("Email", emailInUseMessage)
			return nil, v, nil
		}
		return nil, v, fmt.Errorf("create user: %w", err)
	}

	user.Roles = []string{models.DefaultRole}
	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, v, nil
}

func (p PasswordPolicy) violations(password string) []string {
	var out []string

	if len([]rune(password)) < p.MinLength {
		out = append(out, fmt.Sprintf("Passwords must be at least %d characters", p.MinLength))
	}

	var digit, upper, other bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case !unicode.IsLetter(r):
			other = true
		}
	}

	if p.RequireDigit && !digit {
		out = append(out, "Passwords must have at least one digit ('0'-'9')")
	}
	if p.RequireUppercase && !upper {
		out = append(out, "Passwords must have at least one uppercase ('A'-'Z')")
	}
	if p.RequireNonAlphanumeric && !other {
		out = append(out, "Passwords must have at least one non alphanumeric character")
	}

	return out
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
