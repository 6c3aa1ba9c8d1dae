// Package constants holds values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Page lifecycle signals that trigger the session bootstrap
const (
	LifecycleReady = "ready"
	LifecycleLoad  = "load"
)
