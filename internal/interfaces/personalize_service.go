package interfaces

import "context"

// PersonalizeInput carries everything the personalization flow needs: a
// free-text recruiter profile (name, title, company, notes), the user's
// skills, and the base template in "Subject: <line>\n\n<body>" form.
type PersonalizeInput struct {
	RecruiterProfile string `json:"recruiterProfile"`
	YourSkills       string `json:"yourSkills"`
	Template         string `json:"template"`
}

// PersonalizeOutput is the generated email
type PersonalizeOutput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// PersonalizeService generates a personalized cold email from a recruiter
// profile and a base template. When the model output is unusable the service
// falls back to deterministic placeholder substitution rather than failing.
type PersonalizeService interface {
	PersonalizeEmail(ctx context.Context, input *PersonalizeInput) (*PersonalizeOutput, error)
}
