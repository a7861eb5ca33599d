// Package ai talks to the Gemini generateContent REST endpoint. It is
// the drafting collaborator behind ports.ContractDrafter; callers
// treat every failure as degradable.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atln0/GigBooker/internal/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration) *GeminiClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateContract drafts performance-contract prose from the profile
// and the booking's frozen terms.
func (c *GeminiClient) GenerateContract(ctx context.Context, profile *domain.DJProfile, booking *domain.Booking) (string, error) {
	return c.generate(ctx, contractPrompt(profile, booking))
}

// EnhanceBio rewords a bio for a press kit. The caller falls back to
// the original text on error.
func (c *GeminiClient) EnhanceBio(ctx context.Context, bio string) (string, error) {
	prompt := fmt.Sprintf(`Reword the following DJ biography to make it sound more professional, engaging, and suitable for a press kit. Keep it under 150 words.

Current Bio: %q`, bio)
	return c.generate(ctx, prompt)
}

func contractPrompt(profile *domain.DJProfile, booking *domain.Booking) string {
	var b strings.Builder

	b.WriteString("You are a legal assistant specializing in entertainment contracts.\n")
	b.WriteString("Draft a comprehensive, professional DJ Performance Contract based on the following terms.\n")
	b.WriteString("Output ONLY the contract text in Markdown format. Do not include conversational filler.\n\n")

	fmt.Fprintf(&b, "**Parties:**\n- Artist (DJ): %s (%s)\n- Promoter (Client): %s (%s)\n\n",
		profile.Name, profile.Email, booking.PromoterName, booking.PromoterEmail)

	fmt.Fprintf(&b, "**Event Details:**\n- Date: %s\n- Start Time: %s\n- Duration: %v hours\n- Location: %s\n\n",
		booking.EventDate, booking.StartTime, booking.DurationHours, booking.Location)

	fmt.Fprintf(&b, "**Financial Terms:**\n- Total Fee: %s %.2f\n- Payment Terms: 50%% deposit upon signing, 50%% immediately following performance.\n\n",
		profile.Currency, booking.Total)

	if extras := selectedExtras(profile, booking); len(extras) > 0 {
		b.WriteString("**Additional Equipment & Services Provided by Artist:**\n")
		for _, e := range extras {
			fmt.Fprintf(&b, "- %s (%s): %s %.2f\n", e.Name, e.Type, profile.Currency, e.Price)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Payment Account Information:**\n- Bank: %s\n- Account Name: %s\n- Account Number/IBAN: %s\n- Payment Reference: %s\n\n",
		orNA(profile.BankDetails.BankName), orNA(profile.BankDetails.AccountName),
		orNA(profile.BankDetails.AccountNumber), orNA(profile.BankDetails.Reference))

	rider := make([]string, 0, len(profile.TechRider))
	for _, item := range profile.TechRider {
		name := item.Name
		if item.Essential {
			name += " (Essential)"
		}
		rider = append(rider, name)
	}
	fmt.Fprintf(&b, "**Rider & Requirements:**\n- Standard Tech Rider: %s\n\n", strings.Join(rider, ", "))

	if lines := techRequirementLines(profile.TechRequirements); len(lines) > 0 {
		b.WriteString("**Specific Technical Requirements (Mandatory):**\n")
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "- Hospitality provided by Promoter: %s\n\n", hospitality(booking))
	fmt.Fprintf(&b, "**Additional Notes:**\n%s\n\n", orNA(booking.AdditionalNotes))

	b.WriteString("**Clauses to Include:**\n")
	b.WriteString("1. Performance Duties\n")
	b.WriteString("2. Payment Schedule (Include the bank details for transfer)\n")
	b.WriteString("3. Cancellation Policy (Standard 30-day notice)\n")
	b.WriteString("4. Technical Requirements (Promoter guarantees equipment functioning and specific compatibility listed above)\n")
	b.WriteString("5. Equipment/Service Provision: Artist agrees to provide listed extra equipment/services. Promoter agrees to pay as part of total fee.\n")
	b.WriteString("6. Force Majeure\n")
	b.WriteString("7. Indemnification\n\n")
	b.WriteString("Format nicely with headers.\n")

	return b.String()
}

func selectedExtras(profile *domain.DJProfile, booking *domain.Booking) []domain.ExtraItem {
	var out []domain.ExtraItem
	for _, id := range booking.SelectedExtras {
		for _, item := range profile.Extras {
			if item.ID == id {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func techRequirementLines(reqs domain.AdvancedTechRequirements) []string {
	var lines []string
	add := func(label string, r domain.TechRequirement) {
		if !r.Enabled {
			return
		}
		comment := r.Comment
		if comment == "" {
			comment = "Yes"
		}
		lines = append(lines, fmt.Sprintf("- **%s**: %s", label, comment))
	}
	add("Requires Serato Compatibility", reqs.Serato)
	add("Requires Rekordbox Compatibility", reqs.Rekordbox)
	add("Requires Laptop Input", reqs.LaptopInput)
	add("Requires 4 Channels Mixer", reqs.FourChannels)
	return lines
}

func hospitality(booking *domain.Booking) string {
	var provided []string
	if booking.ProvidesTransport {
		provided = append(provided, "Transport")
	}
	if booking.ProvidesAccommodation {
		provided = append(provided, "Accommodation")
	}
	if booking.ProvidesFood {
		provided = append(provided, "Food/Dinner")
	}
	if booking.ProvidesDrinks {
		provided = append(provided, "Drinks/Rider")
	}
	if len(provided) == 0 {
		return "None specified"
	}
	return strings.Join(provided, ", ")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
