// Package taxonomy loads the static category reference table
package taxonomy

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ttyf-labs/ttyf/internal/models"
)

//go:embed static/plaid_categories.csv
var categoriesCSV []byte

const resourceName = "plaid_categories.csv"

// Load parses the bundled category table. The sub-category is the
// detailed code with its "{primary}_" prefix stripped; there is no
// separate column for it. A malformed table is misconfiguration and
// surfaces as ResourceLoadError.
func Load() ([]models.CategoryTaxonomyEntry, error) {
	return parse(categoriesCSV)
}

func parse(data []byte) ([]models.CategoryTaxonomyEntry, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	header, err := reader.Read()
	if err != nil {
		return nil, &models.ResourceLoadError{Resource: resourceName, Err: err}
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"PRIMARY", "DETAILED", "DESCRIPTION"} {
		if _, ok := columns[required]; !ok {
			return nil, &models.ResourceLoadError{
				Resource: resourceName,
				Err:      fmt.Errorf("missing column %s", required),
			}
		}
	}

	var entries []models.CategoryTaxonomyEntry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &models.ResourceLoadError{Resource: resourceName, Err: err}
		}

		primary := row[columns["PRIMARY"]]
		detailed := row[columns["DETAILED"]]
		entries = append(entries, models.CategoryTaxonomyEntry{
			PrimaryCategory: primary,
			SubCategory:     strings.TrimPrefix(detailed, primary+"_"),
			Description:     row[columns["DESCRIPTION"]],
		})
	}

	return entries, nil
}
