package config

import "os"

// GetSecretKey reads SECRET_KEY from the environment on every call. The
// variant's default literal is used only when the variable is absent; an
// empty value is returned as is.
func GetSecretKey(variant Variant) string {
	if value, ok := os.LookupEnv("SECRET_KEY"); ok {
		return value
	}
	return variant.Profile().DefaultSecret
}
