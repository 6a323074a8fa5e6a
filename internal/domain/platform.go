// internal/domain/platform.go
package domain

// PlatformType classifies a financial provider.
type PlatformType string

const (
	PlatformTypeBank          PlatformType = "bank"
	PlatformTypeDigitalWallet PlatformType = "digital_wallet"
	PlatformTypeInvestment    PlatformType = "investment"
	PlatformTypeCrypto        PlatformType = "crypto"
)

// Platform is a reference entity describing a financial provider
// (bank, wallet, broker, exchange). Purely descriptive, no live integration.
type Platform struct {
	ID           int64        `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	PlatformType PlatformType `db:"platform_type" json:"platform_type"`
	LogoURL      *string      `db:"logo_url" json:"logo_url"`
	IsActive     bool         `db:"is_active" json:"is_active"`
}
