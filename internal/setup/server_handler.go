package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/comptoir/internal/admin"
	"github.com/bornholm/comptoir/internal/authn"
	"github.com/bornholm/comptoir/internal/config"
	"github.com/bornholm/comptoir/internal/pprof"
	"github.com/bornholm/comptoir/internal/ratelimit"
	"github.com/bornholm/comptoir/pkg/log"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

const pprofPrefix = "/debug/pprof"

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	sh, err := NewShellFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	auth, err := NewAuthMiddlewareFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rateLimiter := ratelimit.New(rate.Limit(conf.RateLimit.Rate), int(conf.RateLimit.Burst))
	rateLimiterMiddleware := rateLimiter.Middleware(func(r *http.Request) (string, error) {
		user, err := authn.ContextUser(r.Context())
		if err != nil {
			return ratelimit.RemoteAddr(r)
		}

		return user.UserProvider() + "-" + user.UserSubject(), nil
	})

	// Unauthenticated attempts are throttled per address before any password
	// is checked
	addrLimiter := ratelimit.New(rate.Limit(conf.RateLimit.Rate), int(conf.RateLimit.Burst))
	addrLimiterMiddleware := addrLimiter.Middleware(ratelimit.RemoteAddr)

	adminHandler := admin.NewHandler(adminPrefix, sh)
	protected := withRequestID(slogMiddleware(addrLimiterMiddleware(auth(rateLimiterMiddleware(adminHandler)))))

	mux.Handle(adminPrefix, protected)
	mux.Handle(adminPrefix+"/", protected)

	if conf.Debug.Pprof {
		mux.Handle(pprofPrefix+"/", withRequestID(slogMiddleware(addrLimiterMiddleware(auth(pprof.NewHandler(pprofPrefix))))))
		slog.InfoContext(ctx, "runtime profiles exposed", slog.String("prefix", pprofPrefix))
	}

	return mux, nil
}

// withRequestID attaches a unique request identifier to the request's log
// records.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := log.WithAttrs(r.Context(), slog.String("requestID", xid.New().String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
