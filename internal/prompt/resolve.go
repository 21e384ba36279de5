package prompt

import (
	"strings"

	"github.com/pcbstore/ops-console/internal/apperr"
)

// Resolve substitutes every literal occurrence of ${key} for each key present
// in fields. Only the caller's known field set is substituted; any other
// ${...} token stays verbatim. A blank template is rejected with no partial
// output.
func Resolve(template string, fields map[string]string) (string, error) {
	if strings.TrimSpace(template) == "" {
		return "", apperr.Validationf("Template is empty.")
	}
	out := template
	for key, val := range fields {
		out = strings.ReplaceAll(out, "${"+key+"}", val)
	}
	return out, nil
}

// ProductFields feeds the main product article template.
type ProductFields struct {
	ProductName        string `json:"productName"`
	ProductSpecs       string `json:"productSpecs"`
	ProductCategory    string `json:"productCategory"`
	ProductSubCategory string `json:"productSubCategory"`
	WebsiteName        string `json:"websiteName"`
	Location           string `json:"location"`
}

func (f ProductFields) fieldMap() map[string]string {
	return map[string]string{
		"productName":        f.ProductName,
		"productSpecs":       f.ProductSpecs,
		"productCategory":    f.ProductCategory,
		"productSubCategory": f.ProductSubCategory,
		"websiteName":        f.WebsiteName,
		"location":           f.Location,
	}
}

// ResolveProduct renders the main product template against f.
func ResolveProduct(template string, f ProductFields) (string, error) {
	return Resolve(template, f.fieldMap())
}

// CategoryFields feeds both category-family templates. ProductSubCategory2
// and RelatedCategories are optional; their labelled lines are pruned from
// prompt 1 when empty. ProductContent is only used by prompt 2.
type CategoryFields struct {
	ProductName         string `json:"productName"`
	ProductMainCategory string `json:"productMainCategory"`
	ProductSubCategory  string `json:"productSubCategory"`
	ProductSubCategory2 string `json:"productSubCategory2"`
	RelatedCategories   string `json:"relatedCategories"`
	Specs               string `json:"specs"`
	ProductContent      string `json:"productContent"`
}

// NormalizeRelatedCategories splits a comma-separated list, trims each entry,
// drops empties and rejoins with ", ".
func NormalizeRelatedCategories(s string) string {
	var cats []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	return strings.Join(cats, ", ")
}

// ResolveCategoryPrompt1 renders the category article template, then drops
// the optional "Product Sub Category 2:" and "Product Related Category:"
// lines when the matching field was left empty.
func ResolveCategoryPrompt1(template string, f CategoryFields) (string, error) {
	fields := map[string]string{
		"productName":         f.ProductName,
		"productMainCategory": f.ProductMainCategory,
		"productSubCategory":  f.ProductSubCategory,
		"productSubCategory2": f.ProductSubCategory2,
		"relatedCategories":   NormalizeRelatedCategories(f.RelatedCategories),
		"specs":               f.Specs,
	}
	out, err := Resolve(template, fields)
	if err != nil {
		return "", err
	}
	return pruneOptionalLines(out, f), nil
}

// ResolveCategoryPrompt2 renders the follow-up template over the generated
// article content.
func ResolveCategoryPrompt2(template string, f CategoryFields) (string, error) {
	return Resolve(template, map[string]string{"productContent": f.ProductContent})
}

func pruneOptionalLines(s string, f CategoryFields) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if f.ProductSubCategory2 == "" && strings.Contains(line, "Product Sub Category 2:") {
			continue
		}
		if f.RelatedCategories == "" && strings.Contains(line, "Product Related Category:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
