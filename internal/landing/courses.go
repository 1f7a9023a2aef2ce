// Package landing holds the copy shown on the public landing page.
package landing

// Feature is one course highlight of the Courses section.
type Feature struct {
	Name        string
	Description string
	Icon        string
}

// Section is the Courses showcase: headline, lead paragraph, features.
type Section struct {
	Headline string
	Lead     string
	Image    string
	ImageAlt string
	Features []Feature
}

var courses = Section{
	Headline: "Boost your Skills. Join our Bootcamp today.",
	Lead: "Ac euismod vel sit maecenas id pellentesque eu sed consectetur. Malesuada adipiscing sagittis vel nulla. " +
		"Ac euismod vel sit maecenas.",
	Image:    "/static/batch.svg",
	ImageAlt: "Product screenshot",
	Features: []Feature{
		{Name: "Agentic AI Course.", Description: "Advanced Prompt Engineering", Icon: "cloud-arrow-up"},
		{Name: "Agentic AI Course..", Description: "Autonomous AI Agents", Icon: "lock-closed"},
		{Name: "Generative AI Course.", Description: "AI Content Creation", Icon: "server"},
	},
}

// Courses returns a copy of the Courses section.
func Courses() Section {
	s := courses
	s.Features = append([]Feature(nil), courses.Features...)
	return s
}
