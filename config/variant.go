package config

import "fmt"

// Variant identifies one of the three published releases of the endpoint.
type Variant string

const (
	VariantV1 Variant = "v1"
	VariantV2 Variant = "v2"
	VariantV3 Variant = "v3"

	// DefaultVariant is used when APP_VARIANT is not set
	DefaultVariant = VariantV3
)

const (
	plainBody = "Version 3: Aprobada. Codigo Limpio."
	htmlBody  = "<h1>Versión 3: Aprobada!</h1><p>SCA: OK, SAST: OK, DAST: OK</p>"
)

// VariantProfile holds everything that differs between variants
type VariantProfile struct {
	Body          string
	ContentType   string
	DefaultSecret string
	Host          string
	Port          string
}

var profiles = map[Variant]VariantProfile{
	// v1 keeps the framework's default bind address
	VariantV1: {
		Body:          plainBody,
		ContentType:   "text/html; charset=utf-8",
		DefaultSecret: "default",
		Host:          "127.0.0.1",
		Port:          "5000",
	},
	VariantV2: {
		Body:          htmlBody,
		ContentType:   "text/html; charset=utf-8",
		DefaultSecret: "default",
		Host:          "0.0.0.0",
		Port:          "5000",
	},
	VariantV3: {
		Body:          htmlBody,
		ContentType:   "text/html; charset=utf-8",
		DefaultSecret: "no_secret",
		Host:          "0.0.0.0",
		Port:          "5000",
	},
}

// ParseVariant validates a variant name
func ParseVariant(name string) (Variant, error) {
	v := Variant(name)
	if _, ok := profiles[v]; !ok {
		return "", fmt.Errorf("unknown variant %q (expected v1, v2 or v3)", name)
	}
	return v, nil
}

// GetVariant returns the variant selected by APP_VARIANT
func GetVariant() (Variant, error) {
	return ParseVariant(GetEnv("APP_VARIANT", string(DefaultVariant)))
}

// Profile returns the settings of the variant. Unknown variants get the
// default variant's profile.
func (v Variant) Profile() VariantProfile {
	if p, ok := profiles[v]; ok {
		return p
	}
	return profiles[DefaultVariant]
}

