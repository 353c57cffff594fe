package reference

// Config holds the locations a build reads from and writes to.
//
// A location is a local path, "s3://bucket/key" for object storage or
// "db://table" for a SQL table (inputs only).
type Config struct {
	// Sirca is the primary source: one row per listed security.
	Sirca string `mapstructure:"sirca" default:"si_au_ref_names.csv"`
	// SecRef is the security reference source keyed by company and share class.
	SecRef string `mapstructure:"secref" default:"Reference_SecurityReference-2025-12-merged.csv"`
	// Master is the master company source keyed by ISIN and symbol.
	Master string `mapstructure:"master" default:"MasterCompany.csv"`
	// Output is where the merged table is written.
	Output string `mapstructure:"output" default:"master_company_reference.csv"`
	// FallbackEncoding is the IANA charset tried when an input is not UTF-8.
	FallbackEncoding string `mapstructure:"fallback_encoding" default:"ISO-8859-1"`
}
