package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayOnboarding
	overlayTips
)

type card struct {
	Title string
	Body  string
}

var onboardingSteps = []card{
	{Title: "Welcome to TaskTidy", Body: "Let's get you set up in just a few quick steps."},
	{Title: "Create Your Tasks", Body: "Add, organize, and prioritize your tasks with ease."},
	{Title: "Organize by Categories", Body: "Group your tasks into different categories to stay organized."},
	{Title: "Track Your Progress", Body: "Monitor your productivity and celebrate your accomplishments."},
}

var quickTips = []card{
	{Title: "Quick Add", Body: "Press **/** on any screen to quickly add a new task."},
	{Title: "Categories", Body: "Organize tasks by selecting different categories.\n\nUse **tab** / **shift+tab** or the number keys **1**-**4**."},
	{Title: "Task Progress", Body: "Check off completed tasks to track your progress.\n\nPress **space** on a task to toggle it."},
}

// onboarding is a linear walkthrough: next on the last step finishes it.
type onboarding struct {
	step int
}

// next advances and reports whether the walkthrough is finished.
func (o *onboarding) next() bool {
	if o.step >= len(onboardingSteps)-1 {
		return true
	}
	o.step++
	return false
}

func (o *onboarding) back() {
	if o.step > 0 {
		o.step--
	}
}

func (o onboarding) view(termWidth int) string {
	s := onboardingSteps[o.step]
	w := modalWidth(termWidth) - 6

	nextLabel := "Next"
	if o.step == len(onboardingSteps)-1 {
		nextLabel = "Get Started"
	}
	controls := styleMuted().Render("enter: "+nextLabel) + "   "
	if o.step > 0 {
		controls += styleMuted().Render("backspace: Back") + "   "
	}
	controls += styleMuted().Render("esc: Skip")

	body := strings.Join([]string{
		renderMarkdown(s.Body, w),
		"",
		stepDots(o.step, len(onboardingSteps)),
		"",
		controls,
	}, "\n")
	return renderModalBox(termWidth, s.Title, body)
}

// tips cycles in both directions.
type tips struct {
	idx int
}

func (t *tips) next() { t.idx = (t.idx + 1) % len(quickTips) }

func (t *tips) prev() { t.idx = (t.idx - 1 + len(quickTips)) % len(quickTips) }

func (t tips) view(termWidth int) string {
	tip := quickTips[t.idx]
	w := modalWidth(termWidth) - 6
	body := strings.Join([]string{
		styleHeading().Render(tip.Title),
		renderMarkdown(tip.Body, w),
		"",
		stepDots(t.idx, len(quickTips)),
		"",
		styleMuted().Render("←/→: cycle   esc: close"),
	}, "\n")
	return renderModalBox(termWidth, "Quick Tips", body)
}

func stepDots(current, n int) string {
	dots := make([]string, n)
	for i := range dots {
		if i == current {
			dots[i] = lipgloss.NewStyle().Foreground(colorAccent).Render("━━")
			continue
		}
		dots[i] = styleMuted().Render("•")
	}
	return strings.Join(dots, " ")
}
