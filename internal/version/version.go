// ABOUTME: Version information for the encoder
// ABOUTME: Reported by the CLI and recorded in logs
package version

const (
	// Version is the software version
	Version = "0.1.0"

	// Product is the product name
	Product = "same-go"

	// Manufacturer identifies the maintainer
	Manufacturer = "Resonate Protocol"
)
