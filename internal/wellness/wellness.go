// Package wellness serves the static coping-tools content: motivational
// quotes and guided coping techniques.
package wellness

import "time"

var motivationalQuotes = []string{
	"You don't have to control your thoughts. You just have to stop letting them control you. — Dan Millman",
	"The greatest revolution of our generation is the discovery that human beings can alter their lives by altering their attitudes. — William James",
	"What lies behind us and what lies before us are tiny matters compared to what lies within us. — Ralph Waldo Emerson",
	"You are not your thoughts, you are the observer of your thoughts. — Eckhart Tolle",
	"The only way out is through. — Robert Frost",
	"Your mental health is a priority. Your happiness is essential. Your self-care is a necessity.",
	"Progress, not perfection. Every small step counts on your wellness journey.",
}

// QuoteOfDay returns the quote keyed by the calendar day, so everyone sees a
// stable quote for the whole day.
func QuoteOfDay(now time.Time) string {
	return motivationalQuotes[now.Day()%len(motivationalQuotes)]
}

// RandomQuote draws a quote using the provided random index source.
func RandomQuote(pick func(n int) int) string {
	return motivationalQuotes[pick(len(motivationalQuotes))]
}

// CopingTechnique is one guided exercise from the coping-tools catalog.
type CopingTechnique struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Steps       []string `json:"steps"`
}

var copingTechniques = []CopingTechnique{
	{
		Title:       "4-7-8 Breathing",
		Description: "A simple breathing technique to reduce anxiety and promote relaxation",
		Category:    "Breathing",
		Duration:    "2-5 minutes",
		Steps: []string{
			"Exhale completely through your mouth",
			"Close your mouth and inhale through your nose for 4 counts",
			"Hold your breath for 7 counts",
			"Exhale through your mouth for 8 counts",
			"Repeat 3-4 times",
		},
	},
	{
		Title:       "5-4-3-2-1 Grounding",
		Description: "Use your senses to ground yourself in the present moment",
		Category:    "Mindfulness",
		Duration:    "3-5 minutes",
		Steps: []string{
			"Name 5 things you can see",
			"Name 4 things you can touch",
			"Name 3 things you can hear",
			"Name 2 things you can smell",
			"Name 1 thing you can taste",
		},
	},
	{
		Title:       "Progressive Muscle Relaxation",
		Description: "Systematically tense and relax muscle groups to reduce physical tension",
		Category:    "Relaxation",
		Duration:    "10-15 minutes",
		Steps: []string{
			"Start with your toes, tense for 5 seconds then relax",
			"Move to your calves, tense and relax",
			"Continue with thighs, abdomen, hands, arms",
			"Finish with shoulders, neck, and face",
			"Notice the difference between tension and relaxation",
		},
	},
	{
		Title:       "Mindful Walking",
		Description: "Combine gentle movement with mindfulness practice",
		Category:    "Movement",
		Duration:    "5-20 minutes",
		Steps: []string{
			"Find a quiet space to walk slowly",
			"Focus on the sensation of your feet touching the ground",
			"Notice your breathing rhythm",
			"Observe your surroundings without judgment",
			"Return attention to walking when mind wanders",
		},
	},
}

// CopingTechniques returns the catalog. The slice is shared; callers must
// not mutate it.
func CopingTechniques() []CopingTechnique {
	return copingTechniques
}
