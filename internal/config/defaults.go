package config

// DefaultPassword is the secret assumed when neither an explicit password
// nor a password file is available. It matches what the legacy clients fall
// back to, so an unconfigured sender and daemon still agree on the digest.
const DefaultPassword = "growlme"

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"host":          "", // inferred at load time, see InferHost
		"password":      "",
		"password_file": "~/.growl_password",
		"title":         "",
		"success_text":  "Succeeded",
		"fail_text":     "FAILED",
		"sticky":        false,
		"quiet":         false,
	}
}
