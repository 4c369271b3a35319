package engine

import (
	"leadquiz-service/internal/models"
)

// Courses is the closed set of recommendations, ordered from entry level
// to most advanced.
var Courses = []models.Course{
	{Name: "Power BI Essentials", URL: "https://powerbitraining.com.au/power-bi-basic-training-course/"},
	{Name: "Power BI Report Design", URL: "https://powerbitraining.com.au/power-bi-report-design-course/"},
	{Name: "Power BI Advanced", URL: "https://powerbitraining.com.au/power-bi-advanced-training-course/"},
	{Name: "Power BI DAX Essentials", URL: "https://powerbitraining.com.au/dax-course/"},
	{Name: "Power BI Service", URL: "https://powerbitraining.com.au/power-bi-service-course/"},
}

// band is one rung of the recommendation ladder. A score belongs to the
// first band whose upper bound it is below; bounds are inclusive on the
// lower end and the last band is open-ended.
type band struct {
	below  int
	course models.Course
}

var ladder = []band{
	{below: 85, course: Courses[0]},
	{below: 120, course: Courses[1]},
	{below: 150, course: Courses[2]},
	{below: 180, course: Courses[3]},
}

// Recommend maps a score to exactly one course. Total over all integers:
// the bands partition the score space with no gaps and no overlaps.
func Recommend(score int) models.Course {
	for _, b := range ladder {
		if score < b.below {
			return b.course
		}
	}
	return Courses[len(Courses)-1]
}

// LadderRung returns the zero-based position of a score on the course
// ladder, for progress displays.
func LadderRung(score int) int {
	for i, b := range ladder {
		if score < b.below {
			return i
		}
	}
	return len(ladder)
}
