// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinPasswordLength = 6
	// externalSignInAttempts bounds the lookup-then-upgrade retries after losing a creation race.
	externalSignInAttempts = 2
	fallbackUsernamePrefix = "user_"
	defaultVerifyTokenTTL  = 24 * time.Hour
	defaultResetTokenTTL   = 30 * time.Minute
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	sessions          usecase.SessionUsecase
	tokens            service.TokenService
	oauthService      service.OAuthAuthService
	codeExchanger     service.OAuthCodeExchanger
	mailer            service.MailDispatcher
	minPasswordLength int
	verifyTokenTTL    time.Duration
	resetTokenTTL     time.Duration
	appBaseURL        string
	logger            *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	Sessions      usecase.SessionUsecase
	Tokens        service.TokenService
	OAuthService  service.OAuthAuthService
	CodeExchanger service.OAuthCodeExchanger `optional:"true"`
	Mailer        service.MailDispatcher     `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	minPasswordLength := defaultMinPasswordLength
	verifyTokenTTL := defaultVerifyTokenTTL
	resetTokenTTL := defaultResetTokenTTL
	appBaseURL := ""
	if params.Config != nil {
		if auth := params.Config.Auth; auth != nil {
			if auth.MinPasswordLength > 0 {
				minPasswordLength = auth.MinPasswordLength
			}
			if auth.VerifyTokenTTL > 0 {
				verifyTokenTTL = auth.VerifyTokenTTL
			}
			if auth.ResetTokenTTL > 0 {
				resetTokenTTL = auth.ResetTokenTTL
			}
		}
		if params.Config.Mail != nil {
			appBaseURL = strings.TrimRight(params.Config.Mail.AppBaseURL, "/")
		}
	}

	return &identityService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		sessions:          params.Sessions,
		tokens:            params.Tokens,
		oauthService:      params.OAuthService,
		codeExchanger:     params.CodeExchanger,
		mailer:            params.Mailer,
		minPasswordLength: minPasswordLength,
		verifyTokenTTL:    verifyTokenTTL,
		resetTokenTTL:     resetTokenTTL,
		appBaseURL:        appBaseURL,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates a local password account and signs it in.
func (srv *identityService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	mobile := entity.NormalizeMobile(input.MobileNumber)
	username := strings.TrimSpace(input.Username)

	if email == "" && mobile == "" {
		return nil, domainerrors.NewValidationError("email", "an email or a mobile number is required")
	}
	if email != "" && !entity.IsValidEmail(email) {
		return nil, domainerrors.NewValidationError("email", "email is not valid")
	}
	if len(input.Password) < srv.minPasswordLength {
		return nil, domainerrors.NewValidationError("password", "password is too short")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		MobileNumber: mobile,
		PasswordHash: hash,
		Provider:     entity.ProviderTypeLocal,
		Role:         entity.RoleUser,
		ProfileImage: strings.TrimSpace(input.ProfileImage),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if violation, ok := repository.AsUniqueViolation(err); ok {
			srv.log(ctx).Info("Sign-up rejected, value already taken", slog.String("field", violation.Field))
		}

		return nil, translateStorageError(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.String("user_id", user.ID.String()))

	if email != "" {
		srv.sendLink(ctx, user, service.MailTemplateVerify, service.TokenTypeEmailVerify, srv.verifyTokenTTL, "/verify-email")
	}

	return srv.issue(ctx, user)
}

// sendLink mails a tokenised link to user. Failures are logged and never block the caller.
func (srv *identityService) sendLink(ctx context.Context, user *entity.User, template service.MailTemplate, tokenType string, ttl time.Duration, path string) {
	if srv.mailer == nil || user.Email == "" {
		return
	}

	token, err := srv.tokens.GenerateActionToken(user.ID, tokenType, ttl)
	if err != nil {
		srv.log(ctx).Error("Failed to sign link token",
			slog.String("user_id", user.ID.String()),
			slog.String("type", tokenType),
			slog.Any("error", err),
		)

		return
	}

	srv.mailer.Dispatch(service.MailMessage{
		To:        user.Email,
		Template:  template,
		Username:  user.Username,
		ActionURL: srv.appBaseURL + path + "?token=" + url.QueryEscape(token),
	})
}

// RequestPasswordReset mails a reset link to a local account. The outcome is
// the same for unknown addresses so the endpoint cannot probe for accounts.
func (srv *identityService) RequestPasswordReset(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	if !entity.IsValidEmail(email) {
		return domainerrors.NewValidationError("email", "email is not valid")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return translateStorageError(err, "failed to find user")
	}

	if !user.HasPassword() {
		srv.log(ctx).Info("Password reset ignored for external account", slog.String("user_id", user.ID.String()))

		return nil
	}

	srv.sendLink(ctx, user, service.MailTemplateReset, service.TokenTypePasswordReset, srv.resetTokenTTL, "/reset-password")

	return nil
}

// ResetPassword replaces the password of the link's account. A link issued
// before the account last changed is stale, which makes every link single use.
func (srv *identityService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	claims, err := srv.verifyLink(ctx, input.Token, service.TokenTypePasswordReset)
	if err != nil {
		return err
	}

	if len(input.Password) < srv.minPasswordLength {
		return domainerrors.NewValidationError("password", "password is too short")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrInvalidLink)
		}

		return translateStorageError(err, "failed to find user")
	}

	if !user.HasPassword() {
		return domainerrors.NewWrongProviderError(user.Provider.String())
	}
	// IssuedAt has second precision; a change within the issuing second also spends the link.
	if claims.IssuedAt != nil && !user.UpdatedAt.Truncate(time.Second).Before(claims.IssuedAt.Time) {
		return errors.Wrap(domainerrors.ErrInvalidLink, "link was issued before the last account change")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user, []repository.UserField{repository.UserFieldPasswordHash}); err != nil {
		return translateStorageError(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset", slog.String("user_id", user.ID.String()))

	return nil
}

// VerifyEmail marks the link's account as having a confirmed email. Repeating it is harmless.
func (srv *identityService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := srv.verifyLink(ctx, token, service.TokenTypeEmailVerify)
	if err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrInvalidLink)
		}

		return translateStorageError(err, "failed to find user")
	}

	if user.IsEmailVerified {
		return nil
	}

	user.IsEmailVerified = true
	if err := srv.userRepo.Update(ctx, user, []repository.UserField{repository.UserFieldIsEmailVerified}); err != nil {
		return translateStorageError(err, "failed to verify email")
	}

	srv.log(ctx).Info("Email verified", slog.String("user_id", user.ID.String()))

	return nil
}

func (srv *identityService) verifyLink(ctx context.Context, token, tokenType string) (*service.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.NewValidationError("token", "token is required")
	}

	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Link token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidLink)
	}
	if claims.Type != tokenType {
		return nil, errors.Wrap(domainerrors.ErrInvalidLink, "token has the wrong purpose")
	}

	return claims, nil
}

// SignInWithCredentials resolves a password sign-in. The identifier is an email
// address, or a mobile number when it carries no '@'.
func (srv *identityService) SignInWithCredentials(ctx context.Context, identifier, password string) (*entity.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, domainerrors.NewValidationError("identifier", "an email or a mobile number is required")
	}

	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(identifier))
	} else {
		user, err = srv.userRepo.FindByMobileNumber(ctx, entity.NormalizeMobile(identifier))
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, translateStorageError(err, "failed to find user")
	}

	if !user.HasPassword() {
		if user.Provider.IsExternal() {
			return nil, domainerrors.NewWrongProviderError(user.Provider.String())
		}

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Info("Password mismatch", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user.Sanitized(), nil
}

// SignIn resolves the credentials and issues a session.
func (srv *identityService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	identifier := input.Identifier
	if strings.TrimSpace(identifier) == "" {
		identifier = input.Email
	}

	user, err := srv.SignInWithCredentials(ctx, identifier, input.Password)
	if err != nil {
		return nil, err
	}

	return srv.issue(ctx, user)
}

// SignInWithExternalProvider reconciles an external identity with the local
// accounts. Email is the merge key; username never is.
func (srv *identityService) SignInWithExternalProvider(ctx context.Context, input *usecase.ExternalIdentityInput) (*entity.User, error) {
	if input == nil || strings.TrimSpace(input.ExternalID) == "" {
		return nil, domainerrors.NewValidationError("externalId", "external id is required")
	}

	identity := *input
	identity.ExternalID = strings.TrimSpace(identity.ExternalID)
	identity.Email = entity.NormalizeEmail(identity.Email)
	if identity.Provider == entity.ProviderTypeNone {
		identity.Provider = entity.ProviderTypeGoogle
	}
	if identity.Email == "" {
		return nil, domainerrors.NewValidationError("email", "the provider did not supply an email")
	}

	var lastErr error
	for attempt := 0; attempt < externalSignInAttempts; attempt++ {
		user, err := srv.reconcileExternal(ctx, &identity)
		if err == nil {
			return user.Sanitized(), nil
		}

		violation, ok := repository.AsUniqueViolation(err)
		if !ok || (violation.Field != "email" && violation.Field != "externalId") {
			return nil, translateStorageError(err, "failed to reconcile external identity")
		}

		srv.log(ctx).Info("Lost external sign-in race, retrying as lookup",
			slog.String("field", violation.Field),
			slog.Int("attempt", attempt+1),
		)
		lastErr = err
	}

	return nil, translateStorageError(lastErr, "failed to reconcile external identity")
}

func (srv *identityService) reconcileExternal(ctx context.Context, identity *usecase.ExternalIdentityInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByExternalID(ctx, identity.Provider, identity.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by external id")
	}

	user, err = srv.userRepo.FindByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		return srv.upgradeToExternal(ctx, user, identity)
	case errors.Is(err, repository.ErrUserNotFound):
		return srv.createExternalUser(ctx, identity)
	default:
		return nil, errors.Wrap(err, "failed to find user by email")
	}
}

// upgradeToExternal links a password-less account to the external identity once.
func (srv *identityService) upgradeToExternal(ctx context.Context, user *entity.User, identity *usecase.ExternalIdentityInput) (*entity.User, error) {
	if user.HasPassword() {
		return nil, domainerrors.NewWrongProviderError(entity.ProviderTypeLocal.String())
	}
	if user.ExternalID != "" && user.ExternalID != identity.ExternalID {
		provider := user.Provider
		if provider == entity.ProviderTypeNone {
			provider = identity.Provider
		}

		return nil, domainerrors.NewWrongProviderError(provider.String())
	}

	needsUsername := user.Username == ""
	needsImage := user.ProfileImage == ""
	if !user.LinkExternal(identity.Provider, identity.ExternalID, identity.DisplayName, identity.AvatarURL) {
		return user, nil
	}

	fields := []repository.UserField{
		repository.UserFieldProvider,
		repository.UserFieldExternalID,
		repository.UserFieldIsEmailVerified,
	}
	if needsImage && user.ProfileImage != "" {
		fields = append(fields, repository.UserFieldProfileImage)
	}
	if !needsUsername {
		if err := srv.userRepo.Update(ctx, user, fields); err != nil {
			return nil, err
		}
	} else if err := srv.linkWithUsernameBackfill(ctx, user, identity, fields); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account linked to external provider",
		slog.String("user_id", user.ID.String()),
		slog.String("provider", identity.Provider.String()),
	)

	return user, nil
}

// linkWithUsernameBackfill writes the link together with a username for an account
// that has none. The display name is tried first, then the fallback username; when
// both are taken the account is linked without one.
func (srv *identityService) linkWithUsernameBackfill(ctx context.Context, user *entity.User, identity *usecase.ExternalIdentityInput, fields []repository.UserField) error {
	fallback := fallbackUsernamePrefix + identity.ExternalID
	candidates := []string{fallback}
	if user.Username != "" && user.Username != fallback {
		candidates = []string{user.Username, fallback}
	}

	for _, username := range candidates {
		user.Username = username
		err := srv.userRepo.Update(ctx, user, append(fields, repository.UserFieldUsername))
		violation, ok := repository.AsUniqueViolation(err)
		if !ok || violation.Field != "username" {
			return err
		}

		srv.log(ctx).Info("Username taken while linking account", slog.String("username", username))
	}

	user.Username = ""

	return srv.userRepo.Update(ctx, user, fields)
}

func (srv *identityService) createExternalUser(ctx context.Context, identity *usecase.ExternalIdentityInput) (*entity.User, error) {
	fallback := fallbackUsernamePrefix + identity.ExternalID
	username := strings.TrimSpace(identity.DisplayName)
	if username == "" {
		username = fallback
	}

	user := &entity.User{
		Username:        username,
		Email:           identity.Email,
		Provider:        identity.Provider,
		ExternalID:      identity.ExternalID,
		IsEmailVerified: true,
		Role:            entity.RoleUser,
		ProfileImage:    identity.AvatarURL,
	}

	err := srv.userRepo.Create(ctx, user)
	if violation, ok := repository.AsUniqueViolation(err); ok && violation.Field == "username" && username != fallback {
		srv.log(ctx).Info("Display name taken, using fallback username", slog.String("username", fallback))
		user.Username = fallback
		err = srv.userRepo.Create(ctx, user)
	}
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created from external provider",
		slog.String("user_id", user.ID.String()),
		slog.String("provider", identity.Provider.String()),
	)

	return user, nil
}

// ExternalCallback verifies the provider assertion, reconciles it and issues a session.
func (srv *identityService) ExternalCallback(ctx context.Context, input *usecase.ExternalCallbackInput) (*usecase.AuthOutput, error) {
	idToken := strings.TrimSpace(input.IDToken)

	if idToken == "" && strings.TrimSpace(input.Code) != "" {
		if srv.codeExchanger == nil {
			return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "authorization code flow is not configured")
		}

		exchanged, err := srv.codeExchanger.ExchangeIDToken(ctx, strings.TrimSpace(input.Code))
		if err != nil {
			srv.log(ctx).Warn("Authorization code exchange failed", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "code exchange failed")
		}
		idToken = exchanged
	}

	if idToken == "" {
		return nil, domainerrors.NewValidationError("idToken", "an id token or an authorization code is required")
	}

	oauthUser, err := srv.oauthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "id token verification failed")
	}
	if !oauthUser.EmailVerified {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "provider email is not verified")
	}

	user, err := srv.SignInWithExternalProvider(ctx, &usecase.ExternalIdentityInput{
		Provider:    oauthUser.Provider,
		ExternalID:  oauthUser.ID,
		Email:       oauthUser.Email,
		DisplayName: oauthUser.Name,
		AvatarURL:   oauthUser.AvatarURL,
	})
	if err != nil {
		return nil, err
	}

	return srv.issue(ctx, user)
}

// CheckUsername reports whether username is still available.
func (srv *identityService) CheckUsername(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, domainerrors.NewValidationError("username", "username is required")
	}

	exists, err := srv.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, translateStorageError(err, "failed to check username")
	}

	return !exists, nil
}

func (srv *identityService) issue(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	session, err := srv.sessions.IssueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{User: user.Sanitized(), Session: session}, nil
}
