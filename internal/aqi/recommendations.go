package aqi

// Recommendations is the basic 4-field advice bundle shown on the dashboard.
type Recommendations struct {
	General    string `json:"general"`
	Outdoor    string `json:"outdoor"`
	Protection string `json:"protection"`
	Health     string `json:"health"`
}

// DetailedRecommendations is the audience-specific advice bundle shown on the
// health page.
type DetailedRecommendations struct {
	GeneralDetailed   string   `json:"general_detailed"`
	GeneralPopulation string   `json:"general_population"`
	SensitiveGroups   string   `json:"sensitive_groups"`
	Children          string   `json:"children"`
	Elderly           string   `json:"elderly"`
	OutdoorWorkers    string   `json:"outdoor_workers"`
	IndoorProtection  []string `json:"indoor_protection"`
	OutdoorProtection []string `json:"outdoor_protection"`
	HealthImpacts     string   `json:"health_impacts"`
}

// GetRecommendations returns the basic advice bundle for an AQI value.
// Selection uses the same six breakpoints as Category.
func GetRecommendations(value float64) Recommendations {
	switch {
	case value <= BreakpointGood:
		return Recommendations{
			General:    "Air quality is good. Enjoy your outdoor activities.",
			Outdoor:    "It's a great day for outdoor exercise and activities.",
			Protection: "No special protection needed for the general population.",
			Health:     "Good air quality contributes to overall health and well-being.",
		}
	case value <= BreakpointModerate:
		return Recommendations{
			General:    "Air quality is acceptable for most individuals.",
			Outdoor:    "Unusually sensitive people should consider reducing prolonged outdoor exertion.",
			Protection: "No special protection needed for most people.",
			Health:     "Good time to be outdoors, but monitor your body's response if you have respiratory issues.",
		}
	case value <= BreakpointSensitive:
		return Recommendations{
			General:    "Members of sensitive groups may experience health effects.",
			Outdoor:    "People with heart or lung disease, older adults, and children should limit prolonged outdoor exertion.",
			Protection: "Consider wearing masks outdoors if you belong to a sensitive group.",
			Health:     "Stay hydrated and take more breaks during outdoor activities.",
		}
	case value <= BreakpointUnhealthy:
		return Recommendations{
			General:    "Everyone may begin to experience health effects.",
			Outdoor:    "Everyone should limit prolonged outdoor exertion.",
			Protection: "Wear N95 masks outdoors. Keep windows closed at home and in vehicles.",
			Health:     "Consider using air purifiers indoors. Stay well-hydrated.",
		}
	case value <= BreakpointVeryUnhealthy:
		return Recommendations{
			General:    "Health alert: everyone may experience more serious health effects.",
			Outdoor:    "Avoid all outdoor physical activities. Stay indoors if possible.",
			Protection: "Wear N95 masks whenever outdoors. Use air purifiers indoors.",
			Health:     "Check on elderly neighbors and those with respiratory or heart conditions.",
		}
	default:
		return Recommendations{
			General:    "Health warning: emergency conditions. Entire population is more likely to be affected.",
			Outdoor:    "Avoid all outdoor activities. Stay indoors with windows closed.",
			Protection: "Wear N95 masks even for brief outdoor exposure. Seal windows and doors if possible.",
			Health:     "Use air purifiers, stay hydrated, and monitor for symptoms like coughing or shortness of breath.",
		}
	}
}

// GetDetailedRecommendations returns the detailed advice bundle for an AQI value.
func GetDetailedRecommendations(value float64) DetailedRecommendations {
	switch {
	case value <= BreakpointGood:
		return DetailedRecommendations{
			GeneralDetailed:   "Air quality is considered satisfactory, and air pollution poses little or no risk. It's a great day for outdoor activities and exercise.",
			GeneralPopulation: "No special precautions needed. Enjoy your regular outdoor activities.",
			SensitiveGroups:   "For people with unusual sensitivity to air pollution, consider monitoring how you feel during outdoor activities.",
			Children:          "Great air quality for children to play outdoors. Perfect time for outdoor school activities.",
			Elderly:           "Excellent conditions for outdoor walks and activities.",
			OutdoorWorkers:    "Favorable working conditions with minimal air quality concerns.",
			IndoorProtection: []string{
				"No special indoor protection needed",
				"Good time to open windows and let fresh air in",
				"Regular housekeeping is sufficient",
			},
			OutdoorProtection: []string{
				"No special protection required",
				"Regular sun protection still advised",
				"Stay hydrated during outdoor activities",
			},
			HealthImpacts: "Good air quality contributes to overall health and wellbeing. Regular exposure to clean air supports respiratory function and cardiovascular health.",
		}
	case value <= BreakpointModerate:
		return DetailedRecommendations{
			GeneralDetailed:   "Air quality is acceptable; however, there may be a moderate health concern for a very small number of people who are unusually sensitive to air pollution.",
			GeneralPopulation: "Most people can continue normal outdoor activities. Pay attention to your body's signals if you start feeling unwell.",
			SensitiveGroups:   "People with respiratory diseases such as asthma should monitor their condition and limit prolonged outdoor exertion if symptoms occur.",
			Children:          "Good conditions for outdoor play. Children with asthma should take usual precautions.",
			Elderly:           "Generally good conditions for outdoor activities. Those with respiratory conditions should monitor how they feel.",
			OutdoorWorkers:    "Regular work activities can continue. Those with respiratory conditions should take breaks if needed.",
			IndoorProtection: []string{
				"Regular ventilation is fine",
				"Consider using air purifiers if you have respiratory issues",
				"Standard cleaning practices are adequate",
			},
			OutdoorProtection: []string{
				"No special protection needed for most people",
				"Sensitive individuals may want to carry relief medication",
				"Regular sun protection and hydration advised",
			},
			HealthImpacts: "Moderate air quality generally has minimal impact on the general population, but may affect very sensitive individuals. Research shows that occasional exposure to these levels is unlikely to cause long-term effects.",
		}
	case value <= BreakpointSensitive:
		return DetailedRecommendations{
			GeneralDetailed:   "Air quality is unhealthy for sensitive groups. Members of sensitive groups may experience health effects, but the general public is less likely to be affected.",
			GeneralPopulation: "Consider reducing prolonged or heavy outdoor exertion. Take more breaks during outdoor activities.",
			SensitiveGroups:   "People with lung disease, older adults, and children should limit prolonged outdoor exertion and monitor symptoms closely.",
			Children:          "It's okay for children to be outdoors, but limit strenuous activities and watch for symptoms like coughing or difficulty breathing.",
			Elderly:           "Older adults, especially those with heart or lung conditions, should reduce outdoor activities and monitor their health.",
			OutdoorWorkers:    "Take more frequent breaks in shaded or indoor areas. Stay well-hydrated and watch for symptoms.",
			IndoorProtection: []string{
				"Keep windows closed during peak pollution hours",
				"Use air purifiers with HEPA filters if available",
				"Avoid activities that create additional indoor air pollution",
			},
			OutdoorProtection: []string{
				"Consider wearing N95 masks if you're in a sensitive group",
				"Limit outdoor exercise to times when pollution is lower",
				"Keep rescue medications handy if you have respiratory conditions",
				"Choose less-busy routes for commuting to reduce exposure",
			},
			HealthImpacts: "At this level, sensitive individuals may experience respiratory symptoms like coughing or shortness of breath. Research indicates that repeated exposure can contribute to respiratory inflammation and reduced lung function in sensitive groups.",
		}
	case value <= BreakpointUnhealthy:
		return DetailedRecommendations{
			GeneralDetailed:   "Air quality is unhealthy. Everyone may begin to experience health effects, and members of sensitive groups may experience more serious effects.",
			GeneralPopulation: "Everyone should limit prolonged outdoor exertion. Consider rescheduling outdoor activities.",
			SensitiveGroups:   "People with heart or lung disease, older adults, and children should avoid prolonged outdoor exertion and stay indoors when possible.",
			Children:          "Children should reduce outdoor activities, especially during peak pollution hours. School outdoor activities should be moved indoors.",
			Elderly:           "Older adults should stay indoors with windows closed and air purifiers running if available.",
			OutdoorWorkers:    "Reduce strenuous work, take frequent breaks indoors, and wear protective masks when possible.",
			IndoorProtection: []string{
				"Keep all windows and doors closed",
				"Use air purifiers with HEPA filters in main living areas",
				"Avoid burning candles or using gas stoves",
				"Consider using a humidity-controlled air conditioner",
				"Damp-mop surfaces to reduce settled particles",
			},
			OutdoorProtection: []string{
				"Wear N95 masks when outdoors",
				"Minimize time spent outdoors, especially during exercise",
				"Use vehicles with cabin air filters set to recirculate",
				"Carry any needed medications",
				"Shower and change clothes after returning indoors",
			},
			HealthImpacts: "Unhealthy air quality can cause respiratory irritation, coughing, shortness of breath, and aggravate existing heart and lung conditions. Research shows that exposure at these levels can cause measurable lung function decreases and inflammatory responses.",
		}
	case value <= BreakpointVeryUnhealthy:
		return DetailedRecommendations{
			GeneralDetailed:   "Air quality is very unhealthy. Health alert: The risk of health effects is increased for everyone. People should avoid outdoor activities.",
			GeneralPopulation: "Avoid all outdoor physical activities. Stay indoors with windows closed and air purifiers running if available.",
			SensitiveGroups:   "People with heart or lung disease, older adults, children, and pregnant women should strictly avoid outdoor exposure.",
			Children:          "Keep children indoors. All outdoor school activities should be cancelled or moved indoors.",
			Elderly:           "Elderly individuals should strictly remain indoors with air filtration. Consider checking in on elderly neighbors.",
			OutdoorWorkers:    "If possible, move work indoors or reschedule. If outdoor work is mandatory, wear proper respiratory protection and take frequent indoor breaks.",
			IndoorProtection: []string{
				"Stay indoors with windows and doors sealed",
				"Run air purifiers with HEPA filters on highest setting",
				"Create a clean air room if whole-house filtration isn't available",
				"Change HVAC filters to highest efficiency possible",
				"Use wet cleaning methods for dust and avoid vacuuming",
				"Consider using an N95 mask even indoors if air filtration is poor",
			},
			OutdoorProtection: []string{
				"Avoid all unnecessary outdoor activities",
				"Wear N95 or preferably N99 masks for any outdoor exposure",
				"Use eye protection outdoors to reduce eye irritation",
				"Shower immediately after returning indoors",
				"Wash clothes exposed to outdoor air separately",
				"Keep all vehicle windows closed with air on recirculate",
			},
			HealthImpacts: "Very unhealthy air quality can cause significant respiratory distress, aggravate heart and lung disease, and reduce exercise tolerance in healthy individuals. Research links exposure at these levels to increased emergency room visits and negative cardiovascular effects even in healthy people.",
		}
	default:
		return DetailedRecommendations{
			GeneralDetailed:   "Air quality is hazardous. Health warning of emergency conditions: everyone is more likely to be affected and should take precautions.",
			GeneralPopulation: "Everyone should avoid all physical activity outdoors. If possible, remain indoors with air filtration.",
			SensitiveGroups:   "Extremely dangerous conditions for sensitive individuals. Stay indoors with filtered air and minimize physical activity of any kind.",
			Children:          "Keep children strictly indoors with activities that don't require physical exertion. Schools should consider closures.",
			Elderly:           "Dangerous conditions for elderly. Remain indoors, use air filtration, and monitor for any health changes that may require medical attention.",
			OutdoorWorkers:    "Outdoor work should be suspended if possible. If critical work must continue, use highest level of respiratory protection available.",
			IndoorProtection: []string{
				"Remain indoors with all windows and doors sealed",
				"Create a clean air shelter in one room with extra sealing and filtration",
				"Run HEPA air purifiers continuously",
				"Seal gaps under doors and around windows if possible",
				"Avoid any activities that generate indoor air pollution",
				"Consider using N95 masks even indoors if adequate filtration is not available",
				"Minimize physical activity to reduce breathing rate",
			},
			OutdoorProtection: []string{
				"Avoid all outdoor activity if possible",
				"If outdoors is unavoidable, wear N99 or N100 respirators",
				"Cover all exposed skin if possible",
				"Use sealed goggles to protect eyes",
				"Keep outdoor exposure as brief as possible",
				"Shower and change clothes immediately upon returning indoors",
				"Consider temporary relocation if conditions persist",
			},
			HealthImpacts: "Hazardous air quality presents emergency health conditions. Exposure can cause serious aggravation of heart or lung disease and premature mortality in people with cardiopulmonary disease and older adults. Healthy people will experience adverse respiratory and cardiovascular effects. Research shows significantly increased hospital admissions during these pollution levels.",
		}
	}
}
