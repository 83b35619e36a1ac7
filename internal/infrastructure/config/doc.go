// Package config handles loading and validating simulator configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields and value domains
//   - Default value handling
//
// The control loop's timing policy (poll interval, motion timeout), the
// initial device tunables, and the optional backends (MQTT, InfluxDB,
// SQLite history, chart output) are all configured here. Device tunables
// are validated against their domains at load time so a bad initial
// value fails loudly instead of being silently ignored later.
//
// Security Considerations:
//   - Sensitive values (broker passwords, tokens) should be set via
//     environment variables rather than committed YAML
//   - The config file should have restricted permissions (0600)
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Interval())
package config
