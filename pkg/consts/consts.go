package consts

import "os"

const (
	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)
)

const (
	// DefaultConfigFile is the config file looked up when --config isn't given.
	DefaultConfigFile = "cruzak.yaml"

	// ConfigEnvVar names an explicit config file.
	ConfigEnvVar = "CRUZAK_CONFIG"

	// DefaultSourceFile is the workbook imported when no path is configured.
	DefaultSourceFile = "part.xlsx"

	// DefaultSkipRows is the number of leading metadata rows in the workbook.
	DefaultSkipRows = 4

	// AffirmativeToken marks a product as domestically produced.
	AffirmativeToken = "Да"
)

// Database defaults, used when neither the config file nor flags set a value.
const (
	DefaultDriver   = "postgres"
	DefaultHost     = "localhost"
	DefaultPort     = 5432
	DefaultCHPort   = 9000
	DefaultDatabase = "Cruzak"
	DefaultUser     = "postgres"
	DefaultSSLMode  = "disable"
)

const (
	// ProductsTable holds one row per product header row.
	ProductsTable = "products"

	// AttributesTable holds one row per exploded attribute value.
	AttributesTable = "product_attributes"
)
