package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/tollgate-go/internal/client"
	"github.com/MKhiriev/tollgate-go/internal/config"
	"github.com/MKhiriev/tollgate-go/internal/logger"
	"github.com/MKhiriev/tollgate-go/internal/resolver"
	"github.com/MKhiriev/tollgate-go/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	flags, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	log := logger.NewLogger("tollgate", flags.LogLevel)

	if flags.HomeDir == "" {
		if flags.HomeDir, err = os.UserHomeDir(); err != nil {
			log.Warn().Err(err).Msg("home directory unknown, skipping home configuration")
		}
	}

	builder := client.NewBuilder(client.Options{
		HomeDir:          flags.HomeDir,
		AppDir:           flags.AppDir,
		SystemProperties: flags.SystemProperties,
		Logger:           log,
	})

	if flags.APIKeyID != "" || flags.APIKeySecret != "" {
		err = builder.SetAPIKey(models.APIKey{ID: flags.APIKeyID, Secret: flags.APIKeySecret})
	} else {
		err = builder.SetAPIKeyResolver(resolver.NewProviderAPIKeyResolver(builder.CredentialsProvider()))
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error configuring client builder")
	}

	c, err := builder.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("error building client")
	}

	event := log.Info().
		Str("base_url", c.BaseURL()).
		Str("api_key_id", c.Credentials().ID()).
		Str("authentication_scheme", c.AuthenticationScheme().String()).
		Dur("connection_timeout", c.ConnectionTimeout()).
		Str("cache_manager", fmt.Sprintf("%T", c.CacheManager()))
	if p := c.Proxy(); p != nil {
		event = event.Str("proxy_host", p.Host).Int("proxy_port", p.Port).Bool("proxy_authenticated", p.Authenticated())
	}
	if props := flags.SystemProperties.String(); props != "" {
		event = event.Str("system_properties", props)
	}
	event.Msg("client configured")
}
