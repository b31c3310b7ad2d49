// Package email drafts outreach messages for shortlisted candidates
// and renders them as standalone HTML documents. Drafting is pure
// templating over the candidate profiles; nothing is ever sent from
// here.
package email

import (
	"fmt"
	"strings"

	"github.com/hrscout/hrscout/internal/corpus"
)

// Supported tones. Anything other than ToneProfessional falls back to
// the friendly voice.
const (
	ToneFriendly     = "friendly"
	ToneProfessional = "professional"
)

// DefaultJobTitle is used when the caller does not name the role.
const DefaultJobTitle = "exciting opportunity"

// Message is a drafted outreach email.
type Message struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Draft composes an outreach email for one or more candidates. With a
// single recipient the draft is personalized with their name, skills,
// experience and location; with several it addresses the group. Empty
// jobTitle and tone fall back to the defaults.
func Draft(recipients []corpus.Candidate, jobTitle, tone string) Message {
	if jobTitle == "" {
		jobTitle = DefaultJobTitle
	}
	professional := tone == ToneProfessional

	if len(recipients) > 1 {
		return draftGroup(jobTitle, professional)
	}

	var candidate corpus.Candidate
	if len(recipients) == 1 {
		candidate = recipients[0]
	}
	return draftPersonal(candidate, jobTitle, professional)
}

func draftGroup(jobTitle string, professional bool) Message {
	var subject, greeting string
	if professional {
		subject = fmt.Sprintf("Career Opportunity: %s Position", jobTitle)
		greeting = "Dear talented professionals,"
	} else {
		subject = fmt.Sprintf("Exciting %s Opportunity - Perfect Match!", jobTitle)
		greeting = "Hello amazing developers,"
	}

	intro := fmt.Sprintf("I hope this message finds you well. Your profiles have caught our attention for an exciting %s opportunity at our company.", jobTitle)

	body := fmt.Sprintf(`We believe your combined expertise and experience would be an excellent fit for our growing team.

What we're offering:
• Competitive salary package with performance bonuses
• Flexible remote/hybrid work arrangements
• Cutting-edge technology stack and modern development practices
• Professional development budget and learning opportunities
• Collaborative team environment with experienced mentors
• Comprehensive health and wellness benefits

The %s role involves working on innovative projects that make a real impact. We value creativity, technical excellence, and continuous learning.

I would love to schedule a brief call to discuss this opportunity in detail and learn more about your career goals. This could be the perfect next step for your professional journey.`, jobTitle)

	return Message{
		Subject: subject,
		Text:    assemble(greeting, intro, body, closing(professional)),
	}
}

func draftPersonal(candidate corpus.Candidate, jobTitle string, professional bool) Message {
	name := candidate.FirstName
	if name == "" {
		name = "there"
	}
	location := candidate.Location
	if location == "" {
		location = "your area"
	}

	var subject, greeting, intro string
	if professional {
		subject = fmt.Sprintf("Career Opportunity: %s Role", jobTitle)
		greeting = fmt.Sprintf("Dear %s,", name)
		intro = fmt.Sprintf("I am writing to discuss a %s opportunity that aligns well with your professional background.", jobTitle)
	} else {
		subject = fmt.Sprintf("Hi %s, interested in a %s role?", name, jobTitle)
		greeting = fmt.Sprintf("Hi %s,", name)
		intro = fmt.Sprintf("I came across your profile and was impressed by your %d years of experience", candidate.ExperienceYears)
		if len(candidate.Skills) > 0 {
			top := candidate.Skills
			if len(top) > 3 {
				top = top[:3]
			}
			intro += fmt.Sprintf(" and expertise in %s.", strings.Join(top, ", "))
		} else {
			intro += "."
		}
	}

	body := fmt.Sprintf(`I'm reaching out about an exciting %s position that I believe would be perfect for someone with your background and skills.

Why this role is great for you:
• Your %d years of experience make you an ideal candidate
• Work location in %s or remote flexibility available
• Opportunity to work with modern technologies and frameworks
• Collaborative team environment with senior developers
• Competitive compensation package
• Clear career progression path

The role involves building innovative solutions and working on challenging projects that will expand your technical skills. Our team values quality code, continuous learning, and work-life balance.

Would you be interested in a brief 15-minute conversation to learn more about this opportunity? I'm happy to answer any questions you might have.`, jobTitle, candidate.ExperienceYears, location)

	return Message{
		Subject: subject,
		Text:    assemble(greeting, intro, body, closing(professional)),
	}
}

func closing(professional bool) string {
	if professional {
		return `Thank you for your time and consideration.

Best regards,
[Your Name]
Senior Technical Recruiter
[Company Name]
[Email] | [Phone]`
	}
	return `Looking forward to hearing from you! 🚀

Best regards,
[Your Name]
Tech Recruiter @ [Company Name]
[Email] | [Phone]

P.S. Feel free to connect with me on LinkedIn if you'd like to stay in touch about future opportunities.`
}

func assemble(parts ...string) string {
	return strings.Join(parts, "\n\n")
}
