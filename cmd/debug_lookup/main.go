package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"master-reference/cmd"
	"master-reference/core/config"
	"master-reference/feature/reference"

	"go.uber.org/zap"
)

// debug_lookup builds the master reference and prints every merged row whose
// Gcode or CompanyTicker equals the argument, with the stage that matched it.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_lookup <gcode|ticker>")
	}
	needle := strings.ToUpper(strings.TrimSpace(os.Args[1]))

	// Load config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	svc, err := cmd.NewReferenceService(cfg, zap.NewNop())
	if err != nil {
		log.Fatal(err)
	}

	result, err := svc.Build(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Stages ===")
	for _, st := range result.Stages {
		fmt.Printf("%s: matched %d of %d (shadowed keys: %d)\n", st.Stage, st.Matched, st.Total, result.Shadowed[st.Stage])
	}

	fmt.Printf("\n=== Rows for %s ===\n", needle)
	found := 0
	output := []map[string]any{}
	for i := range result.Rows {
		row := &result.Rows[i]
		if strings.ToUpper(row.Security.Gcode) != needle && strings.ToUpper(strings.TrimSpace(row.Security.CompanyTicker)) != needle {
			continue
		}
		found++

		fields := make(map[string]string, len(result.Columns()))
		for _, col := range result.Columns() {
			fields[col] = row.Get(col)
		}
		fmt.Printf("row %d: Gcode=%s MS=(%s, %s) SR matched=%v MC matched=%v via=%q\n",
			i, row.Security.Gcode, row.Security.MSCompanyID, row.Security.MSSecurityID,
			row.SR.Matched, row.MC.Matched, row.MC.Via)

		output = append(output, map[string]any{
			"index":  i,
			"sr":     row.SR.Matched,
			"mc":     row.MC.Matched,
			"mc_via": row.MC.Via,
			"fields": fields,
			"extra":  row.Security.Extra.Fields(),
		})
	}
	if found == 0 {
		fmt.Println("NOT FOUND by Gcode or CompanyTicker")
	}

	summary := reference.Summarize(result)
	data, err := json.MarshalIndent(map[string]any{
		"summary": summary,
		"rows":    output,
	}, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("debug_lookup.json", data, 0644); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nDebug complete. Check debug_lookup.json for details.")
}
