package pagemeta

import "testing"

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		html        string
		title       string
		description string
	}{
		{
			name:  "title only",
			html:  `<html><head><title>Example Domain</title></head><body></body></html>`,
			title: "Example Domain",
		},
		{
			name: "title and description",
			html: `<html><head><title> Spaced </title>` +
				`<meta name="description" content="A test page."></head><body></body></html>`,
			title:       "Spaced",
			description: "A test page.",
		},
		{
			name: "first description wins",
			html: `<html><head><meta name="description" content="first">` +
				`<meta name="description" content="second"></head></html>`,
			description: "first",
		},
		{
			name: "empty markup",
			html: "",
		},
		{
			name:  "broken markup still yields title",
			html:  `<title>Broken</title><div><p>unclosed`,
			title: "Broken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(tt.html)
			if m.Title != tt.title {
				t.Errorf("Title = %q, want %q", m.Title, tt.title)
			}
			if m.Description != tt.description {
				t.Errorf("Description = %q, want %q", m.Description, tt.description)
			}
		})
	}
}
