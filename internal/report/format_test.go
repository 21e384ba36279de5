package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pcbstore/ops-console/internal/models"
)

func TestFormatHourlyHeader(t *testing.T) {
	var d models.ReportData
	d.Brand.Added = 1

	got := Format(d, KindHourly, "")

	assert.Equal(t, "Hourly Update:\n\nProducts\n- brand added 1", got)
}

func TestFormatDailyHeaderWithDateLabel(t *testing.T) {
	var d models.ReportData
	d.Description.Generated = 2
	d.FAQ.Added = 1

	got := Format(d, KindDaily, "2025-01-10")

	want := "Today's work done (2025-01-10):\n\nProducts\n- description generated 2,\n- FAQ added 1"
	assert.Equal(t, want, got)
}

func TestFormatSuppressesAllZeroCategories(t *testing.T) {
	got := Format(models.ReportData{}, KindHourly, "")

	assert.Equal(t, "Hourly Update:\n\nProducts\n", got)
}

func TestFormatKindOrderWithinCategory(t *testing.T) {
	var d models.ReportData
	d.TitleFixed.Fixed = 2
	d.TitleFixed.Added = 1

	got := Format(d, KindHourly, "")

	assert.Contains(t, got, "- title fixed 2, added 1")
}

func TestFormatImageRenamedReadsNaturally(t *testing.T) {
	var d models.ReportData
	d.ImageRenamed.Fixed = 3

	got := Format(d, KindHourly, "")

	assert.Contains(t, got, "- image renamed and fixed 3")
}

func TestFormatProductReCheckLine(t *testing.T) {
	var d models.ReportData
	d.ProductReCheck.Check = 4
	d.ProductReCheck.Fixed = 1

	got := Format(d, KindHourly, "")

	assert.Contains(t, got, "- product re-check check 4, fixed 1")
}

func TestFormatCustomFieldsComeLast(t *testing.T) {
	var d models.ReportData
	d.Price.Added = 1
	d.CustomFields = []models.CustomField{
		{Name: "blog posts", Value: 2},
		{Name: "banners", Value: 0},
	}

	got := Format(d, KindHourly, "")

	assert.True(t, strings.HasSuffix(got, "- price added 1,\n- blog posts 2"))
	assert.NotContains(t, got, "banners")
}

func TestFormatCategoryRenderOrderIsStable(t *testing.T) {
	var d models.ReportData
	d.InternalLink.Added = 1
	d.Description.Generated = 1
	d.MetaTitleDescription.Added = 2

	got := Format(d, KindDaily, "2025-01-10")

	want := "Today's work done (2025-01-10):\n\nProducts\n" +
		"- description generated 1,\n" +
		"- meta title and description added 2,\n" +
		"- internal link added 1"
	assert.Equal(t, want, got)
}
