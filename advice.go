package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// defaultGeminiBaseURL is the public Gemini API endpoint; tests override it
// with an httptest server.
const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

const geminiModel = "gemini-3-flash-preview"

// advicePromptTemplate asks for short, practical coaching based on the
// user's profile, computed metrics, and recent logs. The final instruction
// carries the language name so pt/en responses come back in the UI language.
const advicePromptTemplate = `Act as a sports nutrition, endocrinology, and physical education expert.
Analyze the user data below and provide 3 practical and motivational suggestions (short and direct) to help reach the goal.

Profile:
- Age: %d
- Gender: %s
- Height: %.0f cm
- Start Weight: %.1f kg
- Goal Weight: %.1f kg
- BMR: %d kcal
- TDEE: %d kcal
- Daily Deficit Needed: %d kcal
- Is on track? %s

Recent Logs (Last 5 days):
%s

If there is sleep data, comment on recovery. If there are caloric deviations, suggest gentle corrections.
IMPORTANT: Respond in %s. Use markdown to format.`

// buildAdvicePrompt renders the template from a read-only snapshot of the
// profile, the last 5 logs in date order, and the computed metrics.
func buildAdvicePrompt(p *UserProfile, logs []DailyLog, m HealthMetrics, lang Language) string {
	sorted := sortLogsByDate(logs)
	if len(sorted) > 5 {
		sorted = sorted[len(sorted)-5:]
	}
	recentJSON, err := json.Marshal(sorted)
	if err != nil {
		recentJSON = []byte("[]")
	}

	onTrack := "No"
	if m.IsOnTrack {
		onTrack = "Yes"
	}
	return fmt.Sprintf(advicePromptTemplate,
		p.Age, p.Gender, p.Height, p.CurrentWeight, p.TargetWeight,
		m.BMR, m.TDEE, m.DailyDeficitRequired, onTrack,
		string(recentJSON), tr(lang).AdviceLanguage)
}

/* ─── Gemini HTTP client ─────────────────────────────────────────────── */

// geminiRequest is the generateContent request body.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// callGemini sends a generateContent request and returns the text of the
// first candidate. Uses raw net/http to avoid pulling in the Gemini SDK.
func callGemini(ctx context.Context, prompt, baseURL string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", baseURL, geminiModel)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Extract candidates[0].content.parts[0].text.
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

// getHealthAdvice asks the AI for coaching suggestions. Failures never reach
// the caller as errors: any transport or API problem is logged and converted
// to the localized fallback string, and an empty model response gets the
// "nothing to suggest" variant. Local state is never touched.
func getHealthAdvice(ctx context.Context, p *UserProfile, logs []DailyLog, m HealthMetrics, lang Language, baseURL string) string {
	prompt := buildAdvicePrompt(p, logs, m, lang)

	text, err := callGemini(ctx, prompt, baseURL)
	if err != nil {
		log.Printf("[advice] Gemini error: %v", err)
		return tr(lang).AdviceError
	}
	if strings.TrimSpace(text) == "" {
		return tr(lang).AdviceEmpty
	}
	return text
}
