// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a local account.
type SignUpInput struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password" validate:"required"`
	ProfileImage string `json:"profileImage"`
}

// SignInInput identifies an account by email or mobile number.
type SignInInput struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"password" validate:"required"`
}

// ExternalIdentityInput is the verified identity asserted by the external provider.
type ExternalIdentityInput struct {
	Provider    entity.ProviderType
	ExternalID  string
	Email       string
	DisplayName string
	AvatarURL   string
}

// ExternalCallbackInput carries either an ID token or an authorization code.
type ExternalCallbackInput struct {
	IDToken string `json:"idToken"`
	Code    string `json:"code"`
}

// ForgotPasswordInput names the account that wants a reset link.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordInput redeems a reset link.
type ResetPasswordInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is returned by every successful sign-in or sign-up.
type AuthOutput struct {
	User    *entity.User
	Session *Session
}

// IdentityUsecase resolves sign-in attempts against the identity store and
// reconciles external identities with local accounts.
type IdentityUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignInWithCredentials(ctx context.Context, identifier, password string) (*entity.User, error)
	SignInWithExternalProvider(ctx context.Context, input *ExternalIdentityInput) (*entity.User, error)
	// SignIn runs SignInWithCredentials and issues a session.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	// ExternalCallback verifies the provider token, reconciles and issues a session.
	ExternalCallback(ctx context.Context, input *ExternalCallbackInput) (*AuthOutput, error)
	CheckUsername(ctx context.Context, username string) (bool, error)
	// RequestPasswordReset mails a reset link. Unknown or password-less accounts are ignored silently.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	VerifyEmail(ctx context.Context, token string) error
}
