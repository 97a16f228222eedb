// Package metrics defines and registers all custom Prometheus metrics for the
// authentication service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "not_found", "throttled", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts successfully minted JWTs.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of JWTs issued.",
	},
)

// TokenValidationsTotal counts bearer-token validations in the access filter.
// Label:
//   - result: "valid" or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts user registrations by outcome.
// Label:
//   - result: "created", "existing", "rejected", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// ParameterFetchesTotal counts round-trips to the remote configuration
// service.
// Labels:
//   - parameter: the parameter name requested
//   - result: "ok" or "error"
var ParameterFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parameter_fetches_total",
		Help:      "Total number of configuration parameter fetches, labelled by parameter and result.",
	},
	[]string{"parameter", "result"},
)
