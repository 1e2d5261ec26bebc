// Package observability provides formatted output utilities for verbose
// CLI mode and the shared structured logger.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.ExtractedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found:  %d\n", len(profile.Skills)))
	count := min(len(profile.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
	}
	if len(profile.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
	}
	sb.WriteString("\n")

	if profile.ExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Experience:    %d years\n", *profile.ExperienceYears))
	} else {
		sb.WriteString("Experience:    not stated\n")
	}
	sb.WriteString(fmt.Sprintf("Education:     %s\n", profile.Education))
	sb.WriteString(fmt.Sprintf("Contact info:  %d/3 fields\n", profile.Contact.Count()))
	if len(profile.Sections) > 0 {
		sb.WriteString(fmt.Sprintf("Sections:      %s\n", strings.Join(profile.Sections, ", ")))
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the match and scoring summary.
func (p *Printer) PrintMatch(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	if match.Role != "" {
		sb.WriteString(fmt.Sprintf("Role:       %s\n", match.Role))
	}
	sb.WriteString(fmt.Sprintf("Match:      %.1f%%\n", match.MatchPercent))
	sb.WriteString(fmt.Sprintf("ATS score:  %.1f\n", match.ATSScore))
	sb.WriteString(fmt.Sprintf("Quality:    %.0f/100\n", match.Quality.Total))
	sb.WriteString(fmt.Sprintf("Readiness:  %.0f (%s)\n", match.Readiness.Score, match.Readiness.Level))

	if missing := match.MissingCritical; len(missing) > 0 {
		sb.WriteString("\nMissing critical skills:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", missing[i]))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSalary outputs the salary estimate with its applied multipliers.
func (p *Printer) PrintSalary(est *types.SalaryEstimate) {
	if est == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:     %s (%s)\n", est.Level, est.Industry))
	sb.WriteString(fmt.Sprintf("Range:     $%.0f - $%.0f %s/%s\n", est.Band.Min, est.Band.Max, est.Currency, est.Period))
	sb.WriteString(fmt.Sprintf("Midpoint:  $%.0f\n", est.Band.Avg))

	if len(est.Multipliers) > 0 {
		sb.WriteString("\nApplied multipliers:\n")
		count := min(len(est.Multipliers), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := est.Multipliers[i]
			sb.WriteString(fmt.Sprintf("  • %s: %.2fx\n", m.Label, m.Factor))
		}
		if len(est.Multipliers) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(est.Multipliers)-maxItemsToShow))
		}
	}
	if est.Inflated {
		sb.WriteString("\nNote: combined multiplier is unusually high\n")
	}

	p.printBox("SALARY ESTIMATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdvisor outputs the guidance summary: top gaps and next milestone.
func (p *Printer) PrintAdvisor(report *types.AdvisorReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if len(report.Gaps) > 0 {
		sb.WriteString("Top skill gaps:\n")
		count := min(len(report.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := report.Gaps[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, ~%d weeks)\n", gap.Skill, gap.Tier, gap.LearningWeeks))
		}
		sb.WriteString("\n")
	}
	if len(report.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certifications: %d recommended\n", len(report.Certifications)))
	}
	if len(report.Progression) > 0 {
		next := report.Progression[0]
		sb.WriteString(fmt.Sprintf("Next step:      %s (%s)\n", next.Title, next.Timeline))
	}
	if sb.Len() == 0 {
		return
	}

	p.printBox("CAREER GUIDANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the batch ranking table.
func (p *Printer) PrintRanking(ranked []analyzer.Ranked) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(ranked)))
	for _, entry := range ranked {
		name := entry.Analysis.InputName
		if name == "" {
			name = entry.Analysis.ID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", entry.Rank, name))
		sb.WriteString(fmt.Sprintf("    ATS: %.1f  Match: %.1f%%\n",
			entry.Analysis.Match.ATSScore, entry.Analysis.Match.MatchPercent))
	}

	p.printBox("BATCH RANKING", strings.TrimSuffix(sb.String(), "\n"))
}
