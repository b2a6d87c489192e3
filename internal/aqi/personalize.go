package aqi

import "strings"

// conditionCategory is the small enum the free-text health condition is
// classified into before dispatch. There is no NLP here: classification is
// case-insensitive substring matching over a fixed keyword set.
type conditionCategory int

const (
	conditionNone conditionCategory = iota
	conditionRespiratory
	conditionCardiovascular
	conditionAllergy
	conditionPregnancy
)

func classifyCondition(condition string) conditionCategory {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "asthma") || strings.Contains(c, "copd") || strings.Contains(c, "respiratory"):
		return conditionRespiratory
	case strings.Contains(c, "heart") || strings.Contains(c, "cardiovascular"):
		return conditionCardiovascular
	case strings.Contains(c, "allerg"):
		return conditionAllergy
	case strings.Contains(c, "pregna"):
		return conditionPregnancy
	default:
		return conditionNone
	}
}

// Personalize returns health advice tailored to a free-text health condition.
// The base sentence is selected by AQI band; a condition-specific sentence is
// appended when the condition matches a known keyword category. Every input
// produces a deterministic string; the condition text is never validated.
func Personalize(value float64, condition string) string {
	base := baseAdvice(value)

	specific := specificAdvice(value, classifyCondition(condition))
	if specific == "" {
		return base
	}
	return base + "\n\nPersonalized advice: " + specific
}

func baseAdvice(value float64) string {
	switch {
	case value <= BreakpointGood:
		return "Air quality is good. It's a great day for outdoor activities."
	case value <= BreakpointModerate:
		return "Air quality is moderate. Most people can continue outdoor activities."
	case value <= BreakpointSensitive:
		return "Air quality is unhealthy for sensitive groups. Consider reducing prolonged outdoor exertion."
	case value <= BreakpointUnhealthy:
		return "Air quality is unhealthy. Everyone should reduce prolonged outdoor exertion."
	case value <= BreakpointVeryUnhealthy:
		return "Air quality is very unhealthy. Avoid outdoor activities when possible."
	default:
		return "Air quality is hazardous. Avoid all outdoor activities."
	}
}

func specificAdvice(value float64, cat conditionCategory) string {
	switch cat {
	case conditionRespiratory:
		switch {
		case value <= BreakpointGood:
			return "With your respiratory condition, you should be comfortable outside today, but always keep your rescue inhaler available."
		case value <= BreakpointModerate:
			return "For people with asthma or COPD, watch for any symptoms while outdoors. Consider keeping outdoor activities moderate in duration."
		case value <= BreakpointSensitive:
			return "With your respiratory condition, you should limit prolonged outdoor activities and keep medication handy. Consider wearing an N95 mask if you must be outside."
		default:
			return "Given your respiratory condition, it's strongly advised to stay indoors with windows closed and air purifier running. If you must go outside, wear an N95 mask and limit exposure time."
		}
	case conditionCardiovascular:
		switch {
		case value <= BreakpointGood:
			return "With your heart condition, today's air quality is good for your regular outdoor activities."
		case value <= BreakpointModerate:
			return "For those with heart issues, maintain awareness of your exertion level and any unusual symptoms."
		case value <= BreakpointSensitive:
			return "With your cardiovascular condition, consider indoor exercise today or reducing intensity of outdoor activities."
		default:
			return "Given your heart condition, avoid outdoor exertion today. Air pollution can increase stress on your cardiovascular system."
		}
	case conditionAllergy:
		switch {
		case value <= BreakpointGood:
			return "Allergy sufferers should still monitor personal symptoms, but air quality today is generally favorable."
		case value <= BreakpointModerate:
			return "For allergy sufferers, consider taking your allergy medication before going outdoors today."
		case value <= BreakpointSensitive:
			return "With your allergies, consider wearing a mask outside and taking allergy medication beforehand."
		default:
			return "Given your allergy sensitivity, stay indoors with windows closed and air purifier running if possible."
		}
	case conditionPregnancy:
		switch {
		case value <= BreakpointGood:
			return "For expectant mothers, today's air quality is good for normal outdoor activities."
		case value <= BreakpointModerate:
			return "Pregnant women should monitor how they feel during outdoor activities and take breaks as needed."
		case value <= BreakpointSensitive:
			return "As an expectant mother, consider limiting prolonged outdoor exposure today to protect both you and your baby."
		default:
			return "For the health of you and your baby, it's advised to stay indoors today and keep windows closed."
		}
	default:
		// Unrecognized conditions only get a generic caution above the
		// moderate band.
		if value > BreakpointModerate {
			return "Given your health situation, pay close attention to any unusual symptoms when outdoors and reduce exposure time if needed."
		}
		return ""
	}
}
