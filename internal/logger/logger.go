// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses zerolog for logging and integrates with New Relic to
// instrument the codebase, forwarding logs, metrics, and traces.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService bundles the application logger with the optional New Relic
// application instance that backs it.
//
// When New Relic is not configured (empty license key), GetApplication
// returns nil and every caller degrades to plain zerolog output.
type LoggerService struct {
	log   zerolog.Logger
	nrApp *newrelic.Application
}

// NewService builds the application logger and, if configured, the New
// Relic agent.
//
// Behavior:
//   - Log level comes from ObservabilityConfig.GetLogLevel.
//   - Format "console" pretty-prints to stderr; anything else emits JSON.
//   - With a license key present, the New Relic app is created and log
//     output is routed through zerologWriter so log lines carry trace
//     linking metadata.
//
// A failure to start the agent is logged and tolerated: observability
// must never take the service down.
func NewService(cfg *config.Config) (*LoggerService, error) {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if obs.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	var nrApp *newrelic.Application
	if obs.NewRelic.LicenseKey != "" {
		opts := []newrelic.ConfigOption{
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
		}
		if obs.NewRelic.DebugLogging {
			opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
		}

		nrApp, err = newrelic.NewApplication(opts...)
		if err != nil {
			bootstrap := zerolog.New(out).With().Timestamp().Logger()
			bootstrap.Error().Err(err).Msg("failed to start New Relic agent, continuing without it")
			nrApp = nil
		}
	}

	if nrApp != nil && obs.NewRelic.AppLogForwardingEnabled {
		// zerologWriter decorates each log line with trace linking metadata
		// and forwards it to New Relic alongside the local output.
		w := zerologWriter.New(out, nrApp)
		out = &w
	}

	log := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", obs.ServiceName).
		Str("env", obs.Environment).
		Logger()

	return &LoggerService{
		log:   log,
		nrApp: nrApp,
	}, nil
}

// Logger returns the application logger.
func (s *LoggerService) Logger() *zerolog.Logger {
	return &s.log
}

// GetApplication returns the New Relic application instance, or nil when
// the agent is not configured.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes buffered telemetry. Safe to call when the agent is absent.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// WithTraceContext returns a child logger carrying the transaction's
// trace.id and span.id fields so log lines correlate with traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	md := txn.GetTraceMetadata()
	return log.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}
