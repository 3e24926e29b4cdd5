package cmd

import (
	"context"
	"net/url"

	"github.com/fitzmx6/portfolio/client"
	"github.com/fitzmx6/portfolio/pkg/assets"
	"github.com/fitzmx6/portfolio/pkg/handler"
	"github.com/fitzmx6/portfolio/pkg/router"
	"github.com/fitzmx6/portfolio/pkg/utils"
	"github.com/foomo/keel"
	"github.com/foomo/keel/healthz"
	keelhttp "github.com/foomo/keel/net/http"
	"github.com/foomo/keel/net/http/middleware"
	"github.com/foomo/keel/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func NewServeCommand() *cobra.Command {
	v := newViper()
	// TODO: When keel is updated, set it in the correct place
	service.DefaultHTTPPProfAddr = ":6060"

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the site http server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateServeFlags(v); err != nil {
				return err
			}

			svr := keel.NewServer(
				keel.WithHTTPPrometheusService(servicePrometheusEnabledFlag(v)),
				keel.WithHTTPHealthzService(serviceHealthzEnabledFlag(v)),
				keel.WithPrometheusMeter(servicePrometheusEnabledFlag(v)),
				keel.WithGracefulPeriod(gracefulPeriodFlag(v)),
				keel.WithOTLPGRPCTracer(otelEnabledFlag(v)),
				keel.WithHTTPPProfService(servicePProfEnabledFlag(v)),
			)

			l := svr.Logger()

			c := client.New(l.Named("inst.client"),
				apiBaseURLFlag(v),
				client.WithHTTPClient(
					keelhttp.NewHTTPClient(
						keelhttp.HTTPClientWithTelemetry(),
					),
				),
			)
			if c.BaseURL() == "" {
				l.Error("no api base url configured, the content api must be routed to " + router.ReservedPath + "/ in front of this server")
			}

			opts := []handler.HTTPOption{
				handler.WithProgressive(progressiveFlag(v)),
			}
			if location := assetsFlag(v); location != "" {
				store, err := assets.Open(cmd.Context(), l.Named("inst.assets"), location,
					assets.WithPrefix(assetsPrefixFlag(v)),
				)
				if err != nil {
					return err
				}
				l.Info("serving assets", zap.String("location", location))

				svr.AddReadinessHealthzers(healthz.NewHealthzerFn(store.Healthz))
				svr.AddClosers(func(ctx context.Context) error {
					return store.Close()
				})
				opts = append(opts, handler.WithAssets(store))
			}

			svr.AddServices(
				service.NewHTTP(l.Named("svc.http"), "http", addressFlag(v),
					handler.NewHTTP(l.Named("inst.handler"), c, opts...),
					middleware.Telemetry(),
					middleware.Logger(),
					middleware.GZip(middleware.GZipWithLevel(gzipLevelFlag(v))),
					middleware.Recover(),
				),
			)

			svr.Run()
			return nil
		},
	}

	flags := cmd.Flags()
	addAddressFlag(flags, v)
	addAPIBaseURLFlag(flags, v)
	addAssetsFlag(flags, v)
	addAssetsPrefixFlag(flags, v)
	addProgressiveFlag(flags, v)
	addGracefulPeriodFlag(flags, v)
	addGzipLevelFlag(flags, v)
	addOtelEnabledFlag(flags, v)
	addServiceHealthzEnabledFlag(flags, v)
	addServicePrometheusEnabledFlag(flags, v)
	addServicePProfEnabledFlag(flags, v)

	return cmd
}

func validateServeFlags(v *viper.Viper) error {
	var err error
	if base := apiBaseURLFlag(v); base != "" && !utils.IsValidURL(base) {
		err = multierr.Append(err, errors.Errorf("invalid api base url %q", base))
	}
	if location := assetsFlag(v); location != "" {
		if u, parseErr := url.Parse(location); parseErr != nil {
			err = multierr.Append(err, errors.Wrapf(parseErr, "invalid assets location %q", location))
		} else if u.Scheme != "" && u.Host == "" && u.Scheme != "file" && u.Scheme != "mem" {
			err = multierr.Append(err, errors.Errorf("invalid assets bucket %q", location))
		}
	}
	if level := gzipLevelFlag(v); level < -2 || level > 9 {
		err = multierr.Append(err, errors.Errorf("invalid gzip level %d", level))
	}
	return err
}
