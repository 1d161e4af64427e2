package auth0

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/bookcourier/pkg/circuit_breaker"
)

const (
	emailKeyString = "principalEmail"

	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

type (
	Config struct {
		Issuer   string `yaml:"issuer" envconfig:"AUTH0_DOMAIN"`
		Audience string `yaml:"audience" envconfig:"AUTH0_AUDIENCE"`
		// Secret enables HS256 tokens when no issuer is configured.
		Secret string `yaml:"secret" envconfig:"AUTH_JWT_SECRET" json:"-"`
	}
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoEmail      = errors.New("token has no email claim")
)

// Verifier resolves a bearer token to the email of its principal.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

func NewVerifier(cfg Config) (Verifier, error) {
	switch {
	case cfg.Issuer != "":
		return NewJWKSVerifier(cfg)
	case cfg.Secret != "":
		return NewSecretVerifier([]byte(cfg.Secret)), nil
	default:
		return nil, errors.New("auth0: set AUTH0_DOMAIN or AUTH_JWT_SECRET")
	}
}

// CustomClaims contains custom data we want from the token.
type CustomClaims struct {
	Email string `json:"email"`
	Scope string `json:"scope"`
}

func (c *CustomClaims) Validate(_ context.Context) error {
	if c.Email == "" {
		return ErrNoEmail
	}
	return nil
}

type jwksVerifier struct {
	validator *validator.Validator
}

func NewJWKSVerifier(cfg Config) (Verifier, error) {
	issuerURL, err := url.Parse("https://" + cfg.Issuer + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %v", err)
	}
	provider := jwks.NewCachingProvider(issuerURL, time.Minute*5)
	cb := circuit_breaker.New(20, 30*time.Second, 0.5, 3)
	keyFunc := func(ctx context.Context) (interface{}, error) {
		var key interface{}
		err := cb.Call(func() error {
			k, err := provider.KeyFunc(ctx)
			key = k
			return err
		})
		return key, err
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{cfg.Audience},
		validator.WithCustomClaims(func() validator.CustomClaims { return &CustomClaims{} }),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the jwt validator: %v", err)
	}
	return &jwksVerifier{validator: jwtValidator}, nil
}

func (v *jwksVerifier) Verify(ctx context.Context, token string) (string, error) {
	claims, err := v.validator.ValidateToken(ctx, token)
	if err != nil {
		return "", errors.Wrap(ErrInvalidToken, err.Error())
	}
	validated, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	custom, ok := validated.CustomClaims.(*CustomClaims)
	if !ok || custom.Email == "" {
		return "", ErrNoEmail
	}
	return custom.Email, nil
}

type secretClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type secretVerifier struct {
	key []byte
}

func NewSecretVerifier(key []byte) Verifier {
	return &secretVerifier{key: key}
}

func (v *secretVerifier) Verify(_ context.Context, tokenStr string) (string, error) {
	claims := new(secretClaims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Email == "" {
		return "", ErrNoEmail
	}
	return claims.Email, nil
}

// SignToken issues an HS256 token accepted by the secret verifier.
func SignToken(key []byte, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &secretClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// Middleware authenticates the request and stores the principal email.
func Middleware(v Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(AuthorizationHeader)
			if authorization == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No Authorization Header")
			}
			if !strings.HasPrefix(authorization, bearer) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
			}

			token := strings.TrimSpace(strings.TrimPrefix(authorization, bearer))
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
			}

			email, err := v.Verify(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Token").SetInternal(err)
			}

			c.Set(emailKeyString, email)
			return next(c)
		}
	}
}

type Get interface {
	Get(string) any
}

func GetEmail(getter Get) (string, error) {
	email, ok := getter.Get(emailKeyString).(string)
	if !ok || email == "" {
		return "", errors.New("no principal")
	}
	return email, nil
}
