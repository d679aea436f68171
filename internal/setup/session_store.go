package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/scribe/internal/config"
	"github.com/bornholm/scribe/internal/crypto"
	"github.com/bornholm/scribe/internal/http/session"
	"github.com/pkg/errors"
)

var getSessionCodecFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Codec, error) {
	secrets := make([][]byte, 0, len(conf.HTTP.Session.Keys))
	for _, k := range conf.HTTP.Session.Keys {
		if k == "" {
			continue
		}

		secrets = append(secrets, []byte(k))
	}

	if len(secrets) == 0 {
		key, err := crypto.RandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		slog.WarnContext(ctx, "no session key configured, using a random one: sessions will not survive a restart")

		secrets = append(secrets, key)
	}

	cookieStore := session.NewCookieStore(secrets...)

	cookieStore.MaxAge(int(conf.HTTP.Session.Cookie.MaxAge.Seconds()))
	cookieStore.Options.Path = conf.HTTP.Session.Cookie.Path
	cookieStore.Options.HttpOnly = conf.HTTP.Session.Cookie.HTTPOnly
	cookieStore.Options.Secure = conf.HTTP.Session.Cookie.Secure || conf.Environment.IsProduction()
	cookieStore.Options.SameSite = http.SameSiteLaxMode

	return session.NewCodec(conf.HTTP.Session.Name, cookieStore), nil
})
