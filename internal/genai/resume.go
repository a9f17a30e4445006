// internal/genai/resume.go
package genai

import (
	"context"
	"fmt"
	"strings"

	"skillmatch/internal/common/logger"
	"skillmatch/internal/common/metrics"
	"skillmatch/internal/match"
)

// CandidateProfile is the candidate-submitted material a resume may draw on.
// Nothing outside these fields ever appears in the output.
type CandidateProfile struct {
	Name       string       `json:"name"`
	Email      string       `json:"email,omitempty"`
	Headline   string       `json:"headline,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []string     `json:"education,omitempty"`
}

// Experience is one work history entry as submitted.
type Experience struct {
	Title      string   `json:"title"`
	Company    string   `json:"company,omitempty"`
	Period     string   `json:"period,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

const (
	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)

// Resume is the produced document plus which path produced it.
type Resume struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// ResumeWriter produces resume text for a candidate, preferring the external
// generator and silently degrading to the deterministic template.
type ResumeWriter struct {
	gen    Generator
	logger logger.Logger
}

func NewResumeWriter(gen Generator, log logger.Logger) *ResumeWriter {
	return &ResumeWriter{
		gen:    gen,
		logger: log.WithFields(map[string]interface{}{"component": "resume-writer"}),
	}
}

// Write produces resume text targeting the analyzed role. Generator failures
// are logged and absorbed; the caller always receives a usable document.
func (w *ResumeWriter) Write(ctx context.Context, profile CandidateProfile, analysis *match.Analysis) Resume {
	if w.gen != nil {
		text, err := w.gen.Generate(ctx, Request{Prompt: BuildResumePrompt(profile, analysis)})
		if err == nil {
			return Resume{Text: text, Source: SourceGenerated}
		}
		metrics.GenerationFallbacks.Inc()
		w.logger.Warn("generator unavailable, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return Resume{Text: FallbackResume(profile, analysis), Source: SourceFallback}
}

// BuildResumePrompt assembles the generation prompt from the candidate's
// submitted material and the analysis. The prompt forbids invention: the
// generator may rephrase but not add employers, dates, or credentials.
func BuildResumePrompt(profile CandidateProfile, analysis *match.Analysis) string {
	var parts []string

	parts = append(parts, "You are a professional resume writer. Rewrite the candidate's material into a polished resume.")
	parts = append(parts, fmt.Sprintf("\nTarget role: %s", analysis.Role))
	if analysis.Industry != "" {
		parts = append(parts, fmt.Sprintf("Industry: %s", analysis.Industry))
	}

	parts = append(parts, fmt.Sprintf("\nCandidate: %s", profile.Name))
	if profile.Headline != "" {
		parts = append(parts, fmt.Sprintf("Headline: %s", profile.Headline))
	}
	if profile.Summary != "" {
		parts = append(parts, fmt.Sprintf("Summary: %s", profile.Summary))
	}
	if len(analysis.Skills) > 0 {
		parts = append(parts, fmt.Sprintf("Skills: %s", strings.Join(analysis.Skills, ", ")))
	}

	for _, exp := range profile.Experience {
		line := exp.Title
		if exp.Company != "" {
			line += " at " + exp.Company
		}
		if exp.Period != "" {
			line += " (" + exp.Period + ")"
		}
		parts = append(parts, "\nExperience: "+line)
		for _, h := range exp.Highlights {
			parts = append(parts, "- "+h)
		}
	}
	if len(profile.Education) > 0 {
		parts = append(parts, "\nEducation:")
		for _, e := range profile.Education {
			parts = append(parts, "- "+e)
		}
	}

	parts = append(parts, "\nInstructions:")
	parts = append(parts, "- Use ONLY the material above; never invent employers, dates, or credentials")
	parts = append(parts, fmt.Sprintf("- Emphasize skills relevant to the %s track", analysis.Track))
	parts = append(parts, "- Plain text, section headers in caps, bullet points with dashes")
	parts = append(parts, "\nResume:")

	return strings.Join(parts, "\n")
}

// FallbackResume renders the deterministic template from submitted fields
// only. Same every time for the same inputs.
func FallbackResume(profile CandidateProfile, analysis *match.Analysis) string {
	var b strings.Builder

	b.WriteString(strings.ToUpper(strings.TrimSpace(profile.Name)))
	b.WriteString("\n")
	if profile.Headline != "" {
		b.WriteString(profile.Headline + "\n")
	}
	if profile.Email != "" {
		b.WriteString(profile.Email + "\n")
	}

	if profile.Summary != "" {
		b.WriteString("\nSUMMARY\n")
		b.WriteString(profile.Summary + "\n")
	}

	if len(analysis.Skills) > 0 {
		b.WriteString("\nSKILLS\n")
		for _, s := range analysis.Skills {
			b.WriteString("- " + s + "\n")
		}
	}

	if len(profile.Experience) > 0 {
		b.WriteString("\nEXPERIENCE\n")
		for _, exp := range profile.Experience {
			line := exp.Title
			if exp.Company != "" {
				line += ", " + exp.Company
			}
			if exp.Period != "" {
				line += " | " + exp.Period
			}
			b.WriteString(line + "\n")
			for _, h := range exp.Highlights {
				b.WriteString("- " + h + "\n")
			}
		}
	}

	if len(profile.Education) > 0 {
		b.WriteString("\nEDUCATION\n")
		for _, e := range profile.Education {
			b.WriteString("- " + e + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
