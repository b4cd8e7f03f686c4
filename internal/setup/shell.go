package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/comptoir/internal/admin"
	"github.com/bornholm/comptoir/internal/config"
	"github.com/bornholm/comptoir/internal/shell"
	"github.com/bornholm/comptoir/pkg/log"
	"github.com/pkg/errors"
)

const adminPrefix = "/admin"

var NewShellFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*shell.Shell, error) {
	sh, err := shell.New(
		shell.WithHeader(admin.NewHeader(adminPrefix)),
		shell.WithBrand("Admin", adminPrefix),
		shell.WithMetadata(string(conf.Shell.Title), string(conf.Shell.Description)),
		shell.WithBreakpoint(string(conf.Shell.Breakpoint)),
		shell.WithStorefront("Back to store", string(conf.Shell.StorefrontURL)),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "admin shell ready",
		slog.String("breakpoint", string(conf.Shell.Breakpoint)),
		log.URL("storefront", string(conf.Shell.StorefrontURL)),
	)

	return sh, nil
})
