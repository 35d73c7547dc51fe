// Package config defines the application configuration structure and
// loading logic built on viper, with struct-tag validation.
package config
