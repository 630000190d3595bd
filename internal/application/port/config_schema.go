package port

// ConfigSchemaProvider provides configuration schema information.
type ConfigSchemaProvider interface {
	// JSONSchema returns the configuration file's JSON schema document.
	JSONSchema() ([]byte, error)
}
