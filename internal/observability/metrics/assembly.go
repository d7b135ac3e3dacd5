package metrics

// AssemblyCompleted records a finished assembly and the size of its sections.
func AssemblyCompleted(status string, networks, verification int) {
	if !enabled {
		return
	}
	assemblyTotal.WithLabelValues(status).Inc()
	networksEmitted.Set(float64(networks))
	verificationEmitted.Set(float64(verification))
}

// SectionSkipped records an optional section left out of the config.
func SectionSkipped(section string) {
	if !enabled {
		return
	}
	sectionSkippedTotal.WithLabelValues(section).Inc()
}

// AssemblyWarning records a non-fatal assembly finding.
func AssemblyWarning(code string) {
	if !enabled {
		return
	}
	assemblyWarningTotal.WithLabelValues(code).Inc()
}
