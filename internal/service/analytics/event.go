package analytics

import (
	"strings"
	"time"
)

const (
	CategoryNavigation = "Navigation"
	CategoryDonation   = "Donation"
	CategoryCTA        = "CTA"

	ActionPageView     = "Page View"
	ActionDonateIntent = "Donate Intent"
	ActionClick        = "Click"
)

// Event is a single analytics hit.
type Event struct {
	Category   string            `json:"category"`
	Action     string            `json:"action"`
	Label      string            `json:"label"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}

// Click describes an element the visitor clicked.
type Click struct {
	Text    string   `json:"text"`
	Href    string   `json:"href"`
	Classes []string `json:"classes"`
	Section string   `json:"section"`
}

// PageView builds the navigation event sent on every page load.
func PageView(path string) Event {
	return Event{Category: CategoryNavigation, Action: ActionPageView, Label: path}
}

// ClassifyClick turns a click into a donate-intent event when the element
// points at the donation page, carries the donate-btn class, or mentions
// donating; every other click is a plain CTA click.
func ClassifyClick(c Click) Event {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		text = "Unknown"
	}

	if isDonateIntent(c, text) {
		location := c.Section
		if location == "" {
			location = "unknown"
		}
		return Event{
			Category: CategoryDonation,
			Action:   ActionDonateIntent,
			Label:    text,
			Attributes: map[string]string{
				"button_text": text,
				"location":    location,
				"href":        c.Href,
			},
		}
	}

	return Event{Category: CategoryCTA, Action: ActionClick, Label: text}
}

func isDonateIntent(c Click, text string) bool {
	if strings.Contains(c.Href, "donate.html") {
		return true
	}
	for _, class := range c.Classes {
		if class == "donate-btn" {
			return true
		}
	}
	return strings.Contains(strings.ToLower(text), "donate")
}
