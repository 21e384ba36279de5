package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportTypeHourly is the only record type created through the submit flow;
// the field exists for future report kinds.
const ReportTypeHourly = "hourly"

type ActionKind string

const (
	KindGenerated ActionKind = "generated"
	KindAdded     ActionKind = "added"
	KindFixed     ActionKind = "fixed"
	KindCheck     ActionKind = "check"
)

// ActionCounts holds the per-kind tallies for one work category. A category
// carries only the kinds its CategoryDef lists; Normalize zeroes everything
// else.
type ActionCounts struct {
	Generated int `json:"generated,omitempty"`
	Added     int `json:"added,omitempty"`
	Fixed     int `json:"fixed,omitempty"`
	Check     int `json:"check,omitempty"`
}

func (a ActionCounts) Get(kind ActionKind) int {
	switch kind {
	case KindGenerated:
		return a.Generated
	case KindAdded:
		return a.Added
	case KindFixed:
		return a.Fixed
	case KindCheck:
		return a.Check
	}
	return 0
}

func (a *ActionCounts) set(kind ActionKind, v int) {
	switch kind {
	case KindGenerated:
		a.Generated = v
	case KindAdded:
		a.Added = v
	case KindFixed:
		a.Fixed = v
	case KindCheck:
		a.Check = v
	}
}

// Add accumulates b into a elementwise.
func (a *ActionCounts) Add(b ActionCounts) {
	a.Generated += b.Generated
	a.Added += b.Added
	a.Fixed += b.Fixed
	a.Check += b.Check
}

func (a ActionCounts) IsZero() bool {
	return a.Generated == 0 && a.Added == 0 && a.Fixed == 0 && a.Check == 0
}

type CustomField struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ReportData is the closed counter schema for one report. Unknown categories
// are rejected when the request body is decoded, not silently dropped here.
type ReportData struct {
	Description          ActionCounts  `json:"description"`
	FAQ                  ActionCounts  `json:"faq"`
	KeyFeatures          ActionCounts  `json:"keyFeatures"`
	Specifications       ActionCounts  `json:"specifications"`
	MetaTitleDescription ActionCounts  `json:"metaTitleDescription"`
	TitleFixed           ActionCounts  `json:"titleFixed"`
	ImageRenamed         ActionCounts  `json:"imageRenamed"`
	ProductReCheck       ActionCounts  `json:"productReCheck"`
	Category             ActionCounts  `json:"category"`
	Attributes           ActionCounts  `json:"attributes"`
	DeliveryCharge       ActionCounts  `json:"deliveryCharge"`
	Warranty             ActionCounts  `json:"warranty"`
	WarrantyClaimReasons ActionCounts  `json:"warrantyClaimReasons"`
	Brand                ActionCounts  `json:"brand"`
	Price                ActionCounts  `json:"price"`
	InternalLink         ActionCounts  `json:"internalLink"`
	CustomFields         []CustomField `json:"customFields,omitempty"`
}

// CategoryDef describes one fixed work category: its JSON key, the label the
// formatter renders, the action kinds it carries (in render order), and an
// accessor into ReportData.
type CategoryDef struct {
	Key    string
	Label  string
	Kinds  []ActionKind
	Counts func(*ReportData) *ActionCounts
}

// Categories is the closed category schema in canonical render order.
// The imageRenamed label ends in "and" so its line reads
// "- image renamed and fixed N".
var Categories = []CategoryDef{
	{"description", "description", []ActionKind{KindGenerated, KindAdded}, func(d *ReportData) *ActionCounts { return &d.Description }},
	{"faq", "FAQ", []ActionKind{KindGenerated, KindAdded}, func(d *ReportData) *ActionCounts { return &d.FAQ }},
	{"keyFeatures", "key features", []ActionKind{KindGenerated, KindAdded}, func(d *ReportData) *ActionCounts { return &d.KeyFeatures }},
	{"specifications", "specifications", []ActionKind{KindGenerated, KindAdded}, func(d *ReportData) *ActionCounts { return &d.Specifications }},
	{"metaTitleDescription", "meta title and description", []ActionKind{KindGenerated, KindAdded}, func(d *ReportData) *ActionCounts { return &d.MetaTitleDescription }},
	{"warrantyClaimReasons", "warranty claim reasons", []ActionKind{KindGenerated, KindAdded}, func(d *ReportData) *ActionCounts { return &d.WarrantyClaimReasons }},
	{"titleFixed", "title", []ActionKind{KindFixed, KindAdded}, func(d *ReportData) *ActionCounts { return &d.TitleFixed }},
	{"imageRenamed", "image renamed and", []ActionKind{KindFixed}, func(d *ReportData) *ActionCounts { return &d.ImageRenamed }},
	{"productReCheck", "product re-check", []ActionKind{KindCheck, KindFixed}, func(d *ReportData) *ActionCounts { return &d.ProductReCheck }},
	{"category", "category", []ActionKind{KindAdded}, func(d *ReportData) *ActionCounts { return &d.Category }},
	{"attributes", "attributes", []ActionKind{KindAdded}, func(d *ReportData) *ActionCounts { return &d.Attributes }},
	{"deliveryCharge", "delivery charge", []ActionKind{KindAdded}, func(d *ReportData) *ActionCounts { return &d.DeliveryCharge }},
	{"warranty", "warranty", []ActionKind{KindAdded}, func(d *ReportData) *ActionCounts { return &d.Warranty }},
	{"brand", "brand", []ActionKind{KindAdded}, func(d *ReportData) *ActionCounts { return &d.Brand }},
	{"price", "price", []ActionKind{KindAdded}, func(d *ReportData) *ActionCounts { return &d.Price }},
	{"internalLink", "internal link", []ActionKind{KindAdded}, func(d *ReportData) *ActionCounts { return &d.InternalLink }},
}

var allKinds = []ActionKind{KindGenerated, KindAdded, KindFixed, KindCheck}

// Normalize coerces invalid counter input to zero: negative counts, and
// counts on kinds a category does not carry.
func (d *ReportData) Normalize() {
	for _, def := range Categories {
		counts := def.Counts(d)
		for _, kind := range allKinds {
			v := counts.Get(kind)
			if v < 0 || !def.hasKind(kind) {
				counts.set(kind, 0)
			}
		}
	}
	for i := range d.CustomFields {
		if d.CustomFields[i].Value < 0 {
			d.CustomFields[i].Value = 0
		}
	}
}

func (def CategoryDef) hasKind(kind ActionKind) bool {
	for _, k := range def.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Report is one hourly work log entry owned by a single user.
type Report struct {
	ID        uuid.UUID  `json:"id"`
	Date      string     `json:"date"`
	Time      string     `json:"time"`
	Timestamp time.Time  `json:"timestamp"`
	Type      string     `json:"type"`
	Data      ReportData `json:"data"`
}
