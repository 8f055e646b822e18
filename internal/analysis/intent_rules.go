package analysis

import "regexp"

// Explicit call-to-action phrases: direct instructions to amplify or act.
var explicitCTAPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bshare\s+(this|now|urgently|immediately)`),
	regexp.MustCompile(`\bforward\s+(this|now|urgently)`),
	regexp.MustCompile(`\bspread\s+(the\s+word|awareness)`),
	regexp.MustCompile(`\bboycott\b`),
	regexp.MustCompile(`\bprotest\b`),
	regexp.MustCompile(`\btake\s+action`),
	regexp.MustCompile(`\bmust\s+(do|act|share|stop)`),
	regexp.MustCompile(`\bdo\s+not\s+(take|believe|trust)`),
}

// Implicit call-to-action phrases: pressure without a direct instruction.
var implicitCTAPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\byou\s+(should|need\s+to|must)`),
	regexp.MustCompile(`\beveryone\s+(should|needs\s+to|must)`),
	regexp.MustCompile(`\bwe\s+(should|need\s+to|must)`),
	regexp.MustCompile(`\bdon't\s+let\b`),
	regexp.MustCompile(`\bbefore\s+it's\s+too\s+late`),
	regexp.MustCompile(`\bwake\s+up`),
	regexp.MustCompile(`\bthink\s+about`),
}

// Coded-language indicators. Probability is the matched fraction of this
// list, so adding a pattern dilutes every other signal.
var dogWhistlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bthey\b.*\bplanning`),
	regexp.MustCompile(`\bthey\b.*\bhiding`),
	regexp.MustCompile(`\bthey\b.*\bcontrol`),
	regexp.MustCompile(`\bthey\s+don't\s+want\s+you\s+to\s+know`),
	regexp.MustCompile(`\bthe\s+truth\b.*\bhidden`),
	regexp.MustCompile(`\bwake\s+up\s+sheeple`),
	regexp.MustCompile(`\bdo\s+your\s+own\s+research`),
	regexp.MustCompile(`\bmainstream\s+media.*\blying`),
}

// Keyword lists driving the intent decision ladder.
var (
	alarmistKeywords = []string{
		"urgent", "emergency", "crisis", "disaster", "danger", "threat", "warning",
	}
	incitingKeywords = []string{
		"attack", "fight", "destroy", "burn", "kill", "harm", "revenge",
	}
	persuasiveKeywords = []string{
		"should", "must", "need to", "convince",
	}
	toxicityFallbackKeywords = []string{
		"toxic", "hate", "stupid", "idiot", "kill", "destroy",
	}
)

// Intent decision thresholds.
const (
	incitingKeywordMin  = 2
	incitingToxicityMin = 0.8
	alarmistKeywordMin  = 2
	alarmistToxicityMin = 0.6

	toxicityFallbackScore = 0.9
)
