package constants

// Car store drivers selected by carStore.driver.
const (
	CarStoreDriverPostgres = "postgres"
	CarStoreDriverMongo    = "mongo"
)

// Event publisher providers selected by pubsub.provider.
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Car image defaults applied when the cars and imageStore sections leave them unset.
const (
	DefaultMaxImages   = 10
	DefaultImageFolder = "cars"
)
