/*
Package companion implements the AI chat companion: emergency screening of
incoming messages, the persona prompt, the streaming model chain and the
conversation history endpoints.
*/
package companion

import "strings"

// EmergencyMessage is returned instead of a model reply when a message
// matches an emergency keyword.
const EmergencyMessage = "🚨 EMERGENCY DETECTED: If you are experiencing a medical emergency, please call 911 or go to the nearest emergency room immediately. This is a potentially life-threatening situation that requires immediate professional medical attention."

var emergencyKeywords = []string{
	"chest pain",
	"can't breathe",
	"cannot breathe",
	"difficulty breathing",
	"severe headache",
	"suicidal",
	"kill myself",
	"end my life",
	"want to die",
	"stroke",
	"heart attack",
	"unconscious",
	"severe bleeding",
	"overdose",
	"poisoning",
	"broken bone",
	"severe burn",
	"choking",
}

// DetectEmergency reports whether message contains any emergency keyword,
// ignoring case. Matching is by substring, so "strokes" matches too.
func DetectEmergency(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range emergencyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
