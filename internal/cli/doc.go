// Package cli provides command-line interface setup and configuration
// for the tangocards application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and the
// structured logger.
package cli
