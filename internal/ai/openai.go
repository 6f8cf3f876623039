package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	altai "github.com/sashabaranov/go-openai"

	"staffdeck/internal/engine"
)

// Minimal client wrapper around the chat completion API.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	timeout time.Duration
}

func NewOpenAIClient(apiKey, baseURL, model string, timeout time.Duration) *OpenAIClient {
	return &OpenAIClient{apiKey: apiKey, baseURL: baseURL, model: model, timeout: timeout}
}

func (c *OpenAIClient) Enabled() bool { return c != nil && c.apiKey != "" }

// SummarizeView asks the model for a short narrative about the currently
// filtered roster. Only aggregates leave the process, never the records.
func (c *OpenAIClient) SummarizeView(ctx context.Context, rows []engine.Row) (string, error) {
	if !c.Enabled() {
		return "", errors.New("openai disabled")
	}
	if len(rows) == 0 {
		return "", errors.New("no rows to summarize")
	}
	prompt := buildViewPrompt(rows)
	ctx2, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := altai.DefaultConfig(c.apiKey)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	cli := altai.NewClientWithConfig(cfg)
	resp, err := cli.CreateChatCompletion(ctx2, altai.ChatCompletionRequest{
		Model: c.model,
		Messages: []altai.ChatCompletionMessage{
			{Role: altai.ChatMessageRoleSystem, Content: "You are an HR analyst. Given aggregate workforce statistics, reply with a short plain-text summary, at most five sentences. No markdown."},
			{Role: altai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildViewPrompt reduces the rows to counts and ranges before anything is
// sent over the wire.
func buildViewPrompt(rows []engine.Row) string {
	genders := map[string]int{}
	countries := map[string]int{}
	titles := map[string]int{}
	minAge, maxAge, sumAge := rows[0].User.Age, rows[0].User.Age, 0
	for _, r := range rows {
		genders[string(r.User.Gender)]++
		countries[r.User.Country]++
		titles[r.User.JobTitle]++
		a := r.User.Age
		sumAge += a
		if a < minAge {
			minAge = a
		}
		if a > maxAge {
			maxAge = a
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Employees in the current view: %d\n", len(rows))
	fmt.Fprintf(&b, "Age: min %d, max %d, mean %.1f\n", minAge, maxAge, float64(sumAge)/float64(len(rows)))
	writeCounts(&b, "By gender", genders, 0)
	writeCounts(&b, "By country", countries, 10)
	writeCounts(&b, "By job title", titles, 10)
	return b.String()
}

// writeCounts emits "label: k1=v1, k2=v2" with the largest counts first,
// truncated to top entries when top > 0.
func writeCounts(b *strings.Builder, label string, counts map[string]int, top int) {
	type kv struct {
		k string
		v int
	}
	all := make([]kv, 0, len(counts))
	for k, v := range counts {
		all = append(all, kv{k, v})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].v != all[j].v {
			return all[i].v > all[j].v
		}
		return all[i].k < all[j].k
	})
	if top > 0 && len(all) > top {
		all = all[:top]
	}
	b.WriteString(label)
	b.WriteString(": ")
	for i, e := range all {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s=%d", e.k, e.v)
	}
	b.WriteByte('\n')
}
