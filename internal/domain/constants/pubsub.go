// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers selectable in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Attribute keys set on published messages.
const (
	AttrAlertID   = "alert_id"
	AttrProductID = "product_id"
	AttrAlertType = "alert_type"
	AttrRequestID = "request_id"
)
