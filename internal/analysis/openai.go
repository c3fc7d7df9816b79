package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const defaultProviderTimeout = 15 * time.Second

const analysisPromptTemplate = `Analyze the sentiment and emotions in this journal entry. Consider both the text content and the user's self-reported mood rating of %d/10.

Journal entry: "%s"

Return a JSON object with exactly these fields:
{
  "sentiment": "positive" | "negative" | "neutral",
  "confidence": <number 0-1>,
  "emotions": ["joy", "contentment", "anxiety", ...],
  "moodScore": <number 1-10 considering both text sentiment and user rating>,
  "keyPhrases": ["phrases that influenced the analysis"],
  "insights": "a brief, empathetic insight about their emotional state",
  "recommendations": ["2-3 personalized wellness recommendations"]
}

Be compassionate and supportive in your analysis. Focus on mental wellness and emotional understanding.`

const chatPromptTemplate = `You are a compassionate AI wellness assistant for Mind Haven, a mental health tracking app. You help users understand their emotions, provide coping strategies, and offer supportive guidance.

User's message: "%s"

Respond as a caring mental health companion. You should:
1. Be empathetic and understanding
2. Provide practical wellness advice when appropriate
3. Ask thoughtful follow-up questions to encourage reflection
4. Suggest healthy coping mechanisms
5. Validate their feelings
6. Keep responses concise but meaningful (2-3 sentences)
7. If they mention serious mental health concerns, gently suggest professional help

Remember: You're not a replacement for professional therapy, but a supportive companion for daily wellness.`

// OpenAIProvider implements Provider using the OpenAI chat completion API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	logger      *zap.Logger
}

// NewOpenAIProvider creates a provider. A zero timeout selects the default.
func NewOpenAIProvider(apiKey, model string, maxTokens int, temperature float64, timeout time.Duration, logger *zap.Logger) *OpenAIProvider {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIProvider{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     timeout,
		logger:      logger,
	}
}

// Analyze asks the model for a structured sentiment analysis and parses the
// JSON object out of its reply.
func (p *OpenAIProvider) Analyze(ctx context.Context, text string, moodRating int) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(analysisPromptTemplate, moodRating, text),
			},
		},
		MaxTokens:   p.maxTokens,
		Temperature: float32(p.temperature),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("chat completion returned no choices")
	}

	var result Result
	if err := unmarshalLenient(resp.Choices[0].Message.Content, &result); err != nil {
		p.logger.Warn("failed to parse analysis response",
			zap.Error(err),
			zap.String("response", resp.Choices[0].Message.Content))
		return Result{}, err
	}
	return result, nil
}

// Chat asks the model for a supportive companion reply.
func (p *OpenAIProvider) Chat(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(chatPromptTemplate, message),
			},
		},
		MaxTokens:   p.maxTokens,
		Temperature: float32(p.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// unmarshalLenient extracts a JSON object from an LLM reply. Models
// occasionally wrap JSON in markdown code fences or prepend conversational
// filler, so the parser:
//  1. Strips markdown code fences if present (```json ... ```)
//  2. Finds the first { and last } to extract the JSON object
//  3. Attempts json.Unmarshal on the extracted substring
func unmarshalLenient(resp string, v any) error {
	s := strings.TrimSpace(resp)

	// Strip markdown code fences.
	if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		if strings.HasPrefix(s, "json") {
			s = s[4:]
		}
		if end := strings.Index(s, "```"); end != -1 {
			s = s[:end]
		}
	}

	// Extract JSON object by brace position.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return fmt.Errorf("no JSON object in response")
	}

	if err := json.Unmarshal([]byte(s[start:end+1]), v); err != nil {
		return fmt.Errorf("unmarshalling response object: %w", err)
	}
	return nil
}
