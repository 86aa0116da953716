package personalize

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/interfaces"
)

const systemPrompt = `You are an AI email assistant specializing in generating personalized cold emails for job seekers.

Your goal is to create a compelling, personalized email subject and body.

You will be provided with:
1. Recruiter Profile: information about the recruiter (name, title, company, notes).
2. Your Skills: the job seeker's skills and experiences.
3. Base Email Template: an existing email template serving as inspiration, in the format "Subject: <subject_line>" followed by a blank line and the body.

Craft a unique and engaging email tailored to the specific recruiter. Replace placeholders like {recruiter_name}, {company_name}, {your_name}, and {your_skills} with relevant information or adapt them appropriately.

Respond in exactly this format, with no surrounding commentary:
Subject: <personalized subject line>

<personalized email body>`

const fallbackNotice = "[AI Personalization Issue - Fallback Content]"

// companyAtRe pulls "at CompanyName" out of a free-text recruiter profile
var companyAtRe = regexp.MustCompile(`(?i)at\s(.*?)(?:,|\.|;|$)`)

// Service generates personalized outreach emails. Model failures degrade to
// deterministic placeholder substitution; the daily usage allowance is the
// only hard gate.
type Service struct {
	logger arbor.ILogger
	llm    interfaces.LLMService
	usage  interfaces.UsageService
}

// NewService creates a personalization service
func NewService(llm interfaces.LLMService, usage interfaces.UsageService, logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
		llm:    llm,
		usage:  usage,
	}
}

// PersonalizeEmail implements interfaces.PersonalizeService
func (s *Service) PersonalizeEmail(ctx context.Context, input *interfaces.PersonalizeInput) (*interfaces.PersonalizeOutput, error) {
	if input == nil || strings.TrimSpace(input.RecruiterProfile) == "" {
		return nil, fmt.Errorf("recruiter profile is required")
	}
	if strings.TrimSpace(input.Template) == "" {
		return nil, fmt.Errorf("email template is required")
	}

	// No model configured: degrade to placeholder substitution without
	// charging the daily allowance
	if s.llm == nil {
		s.logger.Debug().Msg("No LLM configured, using fallback personalization")
		return s.fallback(input), nil
	}

	allowed, err := s.usage.CanMakeCall()
	if err != nil {
		return nil, fmt.Errorf("failed to check usage allowance: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("daily AI call limit of %d reached; try again tomorrow", s.usage.Limit())
	}

	if err := s.usage.RecordCall(); err != nil {
		return nil, fmt.Errorf("failed to record AI call: %w", err)
	}

	userPrompt := fmt.Sprintf(
		"Recruiter Profile:\n%s\n\nYour Skills:\n%s\n\nBase Email Template (use as inspiration for structure and tone, but generate a new, personalized version):\n%s\n\nBased on all the above, generate the personalized email subject and body.",
		input.RecruiterProfile, input.YourSkills, input.Template,
	)

	response, err := s.llm.Chat(ctx, []interfaces.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Model call failed, using fallback personalization")
		return s.fallback(input), nil
	}

	subject, body, ok := parseModelOutput(response)
	if !ok {
		s.logger.Warn().Int("response_length", len(response)).Msg("Model output unusable, using fallback personalization")
		return s.fallback(input), nil
	}

	return &interfaces.PersonalizeOutput{Subject: subject, Body: body}, nil
}

// parseModelOutput expects "Subject: <line>" then a blank line then the body.
// Code fences around the whole response are tolerated.
func parseModelOutput(response string) (subject, body string, ok bool) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	lines := strings.SplitN(response, "\n", 2)
	first := strings.TrimSpace(lines[0])
	if !strings.HasPrefix(strings.ToLower(first), "subject:") {
		return "", "", false
	}

	subject = strings.TrimSpace(first[len("subject:"):])
	if len(lines) > 1 {
		body = strings.TrimSpace(lines[1])
	}
	if subject == "" || body == "" {
		return "", "", false
	}
	return subject, body, true
}

// fallback performs deterministic placeholder substitution on the base
// template when the model cannot be used
func (s *Service) fallback(input *interfaces.PersonalizeInput) *interfaces.PersonalizeOutput {
	// The profile's leading segment is the recruiter's name by convention
	recruiterName := strings.TrimSpace(strings.SplitN(input.RecruiterProfile, ",", 2)[0])
	if recruiterName == "" {
		recruiterName = "Recruiter"
	}

	companyName := "their company"
	if m := companyAtRe.FindStringSubmatch(input.RecruiterProfile); m != nil {
		if c := strings.TrimSpace(m[1]); c != "" {
			companyName = c
		}
	}

	baseSubject, baseBody := splitTemplate(input.Template)

	replace := func(text, yourName string) string {
		text = replaceAllFold(text, "{recruiter_name}", recruiterName)
		text = replaceAllFold(text, "{company_name}", companyName)
		text = replaceAllFold(text, "{your_name}", yourName)
		return text
	}

	subject := replace(baseSubject, "a Skilled Professional")
	body := replace(baseBody, "a Skilled Professional")
	body = replaceAllFold(body, "{your_skills}", input.YourSkills)

	return &interfaces.PersonalizeOutput{
		Subject: subject,
		Body:    fallbackNotice + "\n\n" + body,
	}
}

// splitTemplate separates a "Subject: <line>\n\n<body>" template into parts,
// tolerating templates without the Subject prefix
func splitTemplate(template string) (subject, body string) {
	subject = "Following Up"

	parts := strings.SplitN(template, "\n\n", 2)
	first := strings.TrimSpace(parts[0])

	switch {
	case strings.HasPrefix(strings.ToLower(first), "subject:"):
		subject = strings.TrimSpace(first[len("subject:"):])
		if len(parts) > 1 {
			body = strings.TrimSpace(parts[1])
		} else {
			body = "Please see details below."
		}
	case len(parts) > 1:
		// No Subject prefix but multiple blocks: treat the first as subject
		subject = first
		body = strings.TrimSpace(parts[1])
	default:
		// A single block is all body
		body = template
	}
	return subject, body
}

// replaceAllFold is strings.ReplaceAll with a case-insensitive needle
func replaceAllFold(text, needle, replacement string) string {
	var b strings.Builder
	lowerText := strings.ToLower(text)
	lowerNeedle := strings.ToLower(needle)

	for {
		idx := strings.Index(lowerText, lowerNeedle)
		if idx < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:idx])
		b.WriteString(replacement)
		text = text[idx+len(needle):]
		lowerText = lowerText[idx+len(lowerNeedle):]
	}
}
