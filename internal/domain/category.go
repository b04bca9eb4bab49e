package domain

// Category is the discrete severity level an AQI value falls into, with its
// user-facing label and health recommendation.
type Category struct {
	Number         int
	Label          string
	Recommendation string
}

// UnknownCategory is returned for assessments with no valid data. Number -1
// distinguishes it from the six real levels (0-5).
var UnknownCategory = Category{
	Number:         -1,
	Label:          "Unknown",
	Recommendation: "No data available",
}

// Categorize maps an AQI value to one of the six EPA severity levels.
// Thresholds are inclusive upper bounds; anything above 300 is Hazardous.
func Categorize(aqi int) Category {
	switch {
	case aqi <= 50:
		return Category{0, "Good", "Air quality is satisfactory, and air pollution poses little or no risk."}
	case aqi <= 100:
		return Category{1, "Moderate", "Air quality is acceptable. However, there may be a risk for some people."}
	case aqi <= 150:
		return Category{2, "Unhealthy for Sensitive Groups", "Members of sensitive groups may experience health effects."}
	case aqi <= 200:
		return Category{3, "Unhealthy", "Some members of the general public may experience health effects."}
	case aqi <= 300:
		return Category{4, "Very Unhealthy", "Health alert: The risk of health effects is increased for everyone."}
	default:
		return Category{5, "Hazardous", "Health warning of emergency conditions: everyone is more likely to be affected."}
	}
}

// Category returns the severity level for the assessment, or UnknownCategory
// when no pollutant produced a valid sub-index.
func (a Assessment) Category() Category {
	if !a.Valid {
		return UnknownCategory
	}
	return Categorize(a.AQI)
}
