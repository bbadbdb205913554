package credentials

// Property names read from system properties and merged configuration.
const (
	PropertyAPIKeyFile   = "tollgate.client.apiKey.file"
	PropertyAPIKeyID     = "tollgate.client.apiKey.id"
	PropertyAPIKeySecret = "tollgate.client.apiKey.secret"
)

// Keys expected inside an API key file.
const (
	fileKeyID     = "apiKey.id"
	fileKeySecret = "apiKey.secret"
)

// DefaultAPIKeyFileName is the key file looked up under ~/.tollgate.
const DefaultAPIKeyFileName = "apiKey.properties"
