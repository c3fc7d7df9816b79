package analysis

import (
	"fmt"
	"strings"
)

// Keyword lists for the demo-mode heuristic. Matching is case-insensitive
// substring containment, so "unhappy" counts as a "happy" hit; this matches
// the shipped behavior the demo depends on for reproducibility.
var (
	positiveWords = []string{"happy", "good", "great", "amazing", "wonderful", "excited", "joy", "love", "peaceful"}
	negativeWords = []string{"sad", "bad", "terrible", "awful", "angry", "frustrated", "stressed", "worried", "anxious"}
)

// chatFallbackResponses is the fixed pool of supportive replies used when no
// model is configured. Callers draw uniformly at random.
var chatFallbackResponses = []string{
	"Thank you for sharing that with me. It sounds like you're processing some important feelings. How are you taking care of yourself today?",
	"I hear you, and your feelings are completely valid. Sometimes it helps to take things one moment at a time. What's one small thing that might bring you comfort right now?",
	"It's really meaningful that you're taking time to reflect on your emotions. That shows great self-awareness. Have you tried any breathing exercises or gentle movement today?",
	"Your willingness to explore your feelings is a strength. Remember that it's okay to have difficult emotions - they're part of being human. What usually helps you feel more grounded?",
}

// fallbackRecommendations are returned for every heuristic analysis.
var fallbackRecommendations = []string{
	"Take a few deep breaths and practice mindfulness",
	"Consider journaling about what's on your mind",
	"Remember to be kind to yourself during this time",
}

const fallbackConfidence = 0.75

// fallbackAnalysis is the deterministic keyword heuristic: sentiment by
// positive/negative hit counts, mood score clamped one step toward the
// detected sentiment, a small fixed emotion set per branch, and the first
// three tokens as key phrases.
func fallbackAnalysis(text string, moodRating int) Result {
	textLower := strings.ToLower(text)

	var positiveCount, negativeCount int
	for _, w := range positiveWords {
		if strings.Contains(textLower, w) {
			positiveCount++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(textLower, w) {
			negativeCount++
		}
	}

	sentiment := "neutral"
	emotions := []string{"calm", "reflective"}
	moodScore := moodRating

	switch {
	case positiveCount > negativeCount:
		sentiment = "positive"
		emotions = []string{"content", "optimistic", "peaceful"}
		moodScore = min(10, moodRating+1)
	case negativeCount > positiveCount:
		sentiment = "negative"
		emotions = []string{"concerned", "thoughtful", "processing"}
		moodScore = max(1, moodRating-1)
	}

	keyPhrases := strings.Fields(text)
	if len(keyPhrases) > 3 {
		keyPhrases = keyPhrases[:3]
	}

	return Result{
		Sentiment:  sentiment,
		Confidence: fallbackConfidence,
		Emotions:   emotions,
		MoodScore:  float64(moodScore),
		KeyPhrases: keyPhrases,
		Insights: fmt.Sprintf(
			"Based on your entry, you seem to be in a %s emotional state. Your self-rating of %d/10 aligns with the tone of your writing.",
			sentiment, moodRating,
		),
		Recommendations: fallbackRecommendations,
		IsDemo:          true,
	}
}
