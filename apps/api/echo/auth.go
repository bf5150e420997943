package echoapi

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/edulearn/core"
	"github.com/trezcool/edulearn/core/session"
)

var (
	tokenContextKey   = "sessionToken"
	sessionContextKey = "session"
)

// Claims represents the session claims transmitted via a JWT. The session ID is the JWT ID.
type Claims struct {
	jwt.StandardClaims
	Role string `json:"role,omitempty"`
}

type authenticator struct {
	conf       *core.Config
	jwtConfig  middleware.JWTConfig
	sessionSvc *session.Service
}

func newAuthenticator(conf *core.Config, sessionSvc *session.Service) *authenticator {
	return &authenticator{
		conf: conf,
		jwtConfig: middleware.JWTConfig{
			SigningKey:    []byte(conf.SecretKey),
			SigningMethod: middleware.AlgorithmHS256,
			ContextKey:    tokenContextKey,
			Claims:        new(Claims),
		},
		sessionSvc: sessionSvc,
	}
}

// GetSessionClaims returns the claims of a token addressing sess.
func GetSessionClaims(conf *core.Config, sess session.Session) *Claims {
	now := time.Now()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        sess.ID,
			Issuer:    conf.AppName,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
	}
	if usr := sess.State.User; usr != nil {
		claims.Subject = usr.ID
		claims.Role = usr.Role
	}
	return claims
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func (a *authenticator) token(sess session.Session) (string, error) {
	return GenerateToken(a.conf, GetSessionClaims(a.conf, sess))
}

// middleware checks the JWT then loads its session into the context.
func (a *authenticator) middleware() echo.MiddlewareFunc {
	jwtMiddleware := middleware.JWTWithConfig(a.jwtConfig)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMiddleware(func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			sess, err := a.sessionSvc.Get(claims.Id)
			if err != nil {
				if errors.Cause(err) == session.ErrNotFound {
					return errSessionExpired
				}
				return errors.Wrap(err, "getting session")
			}
			ctx.Set(sessionContextKey, sess)
			return next(ctx)
		})
	}
}

// lookup returns the live session addressed by the request token, if any.
func (a *authenticator) lookup(ctx echo.Context) (session.Session, bool) {
	auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
	scheme := middleware.DefaultJWTConfig.AuthScheme + " "
	if !strings.HasPrefix(auth, scheme) {
		return session.Session{}, false
	}

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(auth[len(scheme):], claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != a.jwtConfig.SigningMethod {
			return nil, errors.Errorf("unexpected jwt signing method=%v", t.Header["alg"])
		}
		return a.jwtConfig.SigningKey, nil
	})
	if err != nil || !token.Valid {
		return session.Session{}, false
	}
	sess, err := a.sessionSvc.Get(claims.Id)
	return sess, err == nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(tokenContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextSession(ctx echo.Context) (session.Session, error) {
	if sess, ok := ctx.Get(sessionContextKey).(session.Session); ok {
		return sess, nil
	}
	return session.Session{}, errUnauthorized
}
