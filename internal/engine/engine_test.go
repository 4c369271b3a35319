package engine

import (
	"testing"

	"leadquiz-service/internal/catalog"
)

// testCatalog mirrors the two-question scenario the engine contracts are
// specified against: a single-select question scored 50/100 and a
// multi-select question (scored 40/60) that only appears when the
// 100-point option is chosen.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	doc := `[
		{
			"id": 1,
			"question": "How much Power BI experience do you have?",
			"inputType": "radio",
			"options": [
				{"id": 1, "text": "Some experience", "score": 50},
				{"id": 2, "text": "Extensive experience", "score": 100}
			]
		},
		{
			"id": 2,
			"question": "Which advanced features do you use?",
			"inputType": "checkbox",
			"conditional": true,
			"dependsOn": {"questionId": 1, "optionIds": [2]},
			"options": [
				{"id": 3, "text": "DAX measures", "score": 40},
				{"id": 4, "text": "Deployment pipelines", "score": 60}
			]
		}
	]`
	cat, err := catalog.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("failed to parse test catalog: %v", err)
	}
	return cat
}
