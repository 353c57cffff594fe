// Package table provides the in-memory tabular model shared by every stage of the
// master reference build.
//
// A Table is read once from a delimited text file (or a SQL table) and is made of
// Rows bound to a Schema. Every value is a string; no numeric or date typing is
// performed, so values pass through the merge verbatim.
//
// # Decoding
//
// Input files are decoded as UTF-8 first (a leading byte order mark is dropped).
// When the bytes are not valid UTF-8 a single-byte legacy encoding is used as a
// fallback. If neither works the read fails with ErrUndecodable.
//
// # Usage
//
//	text, enc, err := table.Decode(raw, fallback)
//	t, err := table.ReadCSV("MasterCompany.csv", bytes.NewReader(text))
//	isin := t.Rows[0].Get("ISIN")
package table
