// Package metrics provides Prometheus instrumentation for seiconf.
//
// seiconf is a short-lived process, so metrics are kept in a private
// registry and written out in the node-exporter textfile format instead of
// being scraped.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	enabled     bool
	serviceName string
	registry    *prometheus.Registry

	// Assembly metrics
	assemblyTotal        *prometheus.CounterVec
	sectionSkippedTotal  *prometheus.CounterVec
	networksEmitted      prometheus.Gauge
	verificationEmitted  prometheus.Gauge
	assemblyWarningTotal *prometheus.CounterVec
)

// Init initializes the metrics system. Calling it again starts a fresh registry.
func Init(enabledFlag bool, svcName string) {
	enabled = enabledFlag
	serviceName = svcName

	if !enabled {
		registry = nil
		return
	}

	registry = prometheus.NewRegistry()
	factory := promauto.With(registry)
	labels := prometheus.Labels{"service": serviceName}

	// Assembly counter by outcome
	assemblyTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "seiconf_assembly_total",
			Help:        "Total number of configuration assemblies",
			ConstLabels: labels,
		},
		[]string{"status"},
	)

	// Optional sections left out
	sectionSkippedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "seiconf_section_skipped_total",
			Help:        "Total number of optional sections skipped for missing credentials",
			ConstLabels: labels,
		},
		[]string{"section"},
	)

	assemblyWarningTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "seiconf_assembly_warning_total",
			Help:        "Total number of warnings raised during assembly",
			ConstLabels: labels,
		},
		[]string{"code"},
	)

	networksEmitted = factory.NewGauge(prometheus.GaugeOpts{
		Name:        "seiconf_networks_emitted",
		Help:        "Number of network profiles in the last assembled config",
		ConstLabels: labels,
	})

	verificationEmitted = factory.NewGauge(prometheus.GaugeOpts{
		Name:        "seiconf_verification_emitted",
		Help:        "Number of explorer verification entries in the last assembled config",
		ConstLabels: labels,
	})
}

// Gatherer returns the registry backing the metrics, or nil when disabled.
func Gatherer() prometheus.Gatherer {
	if !enabled {
		return nil
	}
	return registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func WriteTextfile(path string) error {
	if !enabled {
		return errors.New("metrics are disabled")
	}
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

// Enabled returns whether metrics are enabled.
func Enabled() bool {
	return enabled
}

// ServiceName returns the configured service name for metric labels.
func ServiceName() string {
	return serviceName
}
