// Package config loads HMM run parameters (K, M, T, the transition and
// emission matrices, the initial distribution, and driver settings) from
// a YAML, JSON, or TOML file via viper. The Observations path in Run is
// parsed but not read by any command; the driver commands generate
// synthetic observation sequences instead.
package config
