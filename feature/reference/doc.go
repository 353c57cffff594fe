// Package reference builds the master company reference.
//
// The primary source (SIRCA names, one row per listed security) is enriched in
// three passes:
//
//  1. Share class join on (MS_CompanyID, MS_SecurityID) = (CompanyId, ShareClassId)
//     against the security reference. Matched columns are copied as SR_*.
//  2. Company join on SR_ISIN = ISIN against the master company source.
//     Matched columns are copied as MC_*.
//  3. Symbol fallback for rows still without a company, on the upper-cased
//     CompanyTicker = Symbol. The same MC_* columns are copied.
//
// Every primary row yields exactly one output row. Duplicate keys in a source
// resolve to the first row carrying them. Join keys are trimmed before matching.
//
// # Output
//
// The output header follows OutputColumns, keeping only columns present in the
// merged schema, then appends every other primary column except ExcludedColumns.
//
// # Locations
//
// Sources can be local files, objects ("s3://bucket/key") or SQL tables
// ("db://table"). Text sources are read as UTF-8 and fall back to a configured
// legacy encoding, ISO-8859-1 by default.
package reference
