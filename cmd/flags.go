package cmd

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func logLevelFlag(v *viper.Viper) string {
	return v.GetString("log.level")
}

func addLogLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "info", "log level")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindEnv("log.level", "LOG_LEVEL")
}

func logFormatFlag(v *viper.Viper) string {
	return v.GetString("log.format")
}

func addLogFormatFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-format", "json", "log format")
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindEnv("log.format", "LOG_FORMAT")
}

func addressFlag(v *viper.Viper) string {
	return v.GetString("address")
}

func addAddressFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("address", ":8080", "Address to bind to (host:port)")
	_ = v.BindPFlag("address", flags.Lookup("address"))
	_ = v.BindEnv("address", "PORTFOLIO_ADDRESS")
}

func apiBaseURLFlag(v *viper.Viper) string {
	return v.GetString("api.base_url")
}

func addAPIBaseURLFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("api-base-url", "", "Base url of the content api, empty for the origin of the page request")
	_ = v.BindPFlag("api.base_url", flags.Lookup("api-base-url"))
	_ = v.BindEnv("api.base_url", "PORTFOLIO_API_BASE_URL")
}

func assetsFlag(v *viper.Viper) string {
	return v.GetString("assets.location")
}

func addAssetsFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("assets", "", "Bucket url (gs://bucket) or local directory to serve /images, /video, /css and /js from")
	_ = v.BindPFlag("assets.location", flags.Lookup("assets"))
	_ = v.BindEnv("assets.location", "PORTFOLIO_ASSETS")
}

func assetsPrefixFlag(v *viper.Viper) string {
	return v.GetString("assets.prefix")
}

func addAssetsPrefixFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("assets-prefix", "", "Key prefix of the assets in the bucket")
	_ = v.BindPFlag("assets.prefix", flags.Lookup("assets-prefix"))
	_ = v.BindEnv("assets.prefix", "PORTFOLIO_ASSETS_PREFIX")
}

func progressiveFlag(v *viper.Viper) bool {
	return v.GetBool("progressive")
}

func addProgressiveFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("progressive", false, "Render category pages in their loading state and load the content with htmx")
	_ = v.BindPFlag("progressive", flags.Lookup("progressive"))
	_ = v.BindEnv("progressive", "PORTFOLIO_PROGRESSIVE")
}

func checkLimitFlag(v *viper.Viper) int {
	return v.GetInt("check.limit")
}

func addCheckLimitFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("limit", 4, "Number of concurrent content api requests")
	_ = v.BindPFlag("check.limit", flags.Lookup("limit"))
	_ = v.BindEnv("check.limit", "PORTFOLIO_CHECK_LIMIT")
}

func gracefulPeriodFlag(v *viper.Viper) time.Duration {
	return v.GetDuration("graceful_period")
}

func addGracefulPeriodFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Duration("graceful-period", 0, "Graceful period before the server shuts down")
	_ = v.BindPFlag("graceful_period", flags.Lookup("graceful-period"))
	_ = v.BindEnv("graceful_period", "PORTFOLIO_GRACEFUL_PERIOD")
}

func gzipLevelFlag(v *viper.Viper) int {
	return v.GetInt("gzip.level")
}

func addGzipLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("gzip-level", -1, "Gzip compression level, -1 for the default")
	_ = v.BindPFlag("gzip.level", flags.Lookup("gzip-level"))
	_ = v.BindEnv("gzip.level", "PORTFOLIO_GZIP_LEVEL")
}

func serviceHealthzEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.healthz.enabled")
}

func addServiceHealthzEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-healthz-enabled", false, "Enable healthz service")
	_ = v.BindPFlag("service.healthz.enabled", flags.Lookup("service-healthz-enabled"))
}

func servicePrometheusEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.prometheus.enabled")
}

func addServicePrometheusEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-prometheus-enabled", false, "Enable prometheus service")
	_ = v.BindPFlag("service.prometheus.enabled", flags.Lookup("service-prometheus-enabled"))
}

func servicePProfEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.pprof.enabled")
}

func addServicePProfEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-pprof-enabled", false, "Enable pprof service")
	_ = v.BindPFlag("service.pprof.enabled", flags.Lookup("service-pprof-enabled"))
}

func otelEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("otel.enabled")
}

func addOtelEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("otel-enabled", false, "Enable otel service")
	_ = v.BindPFlag("otel.enabled", flags.Lookup("otel-enabled"))
	_ = v.BindEnv("otel.enabled", "OTEL_ENABLED")
}
