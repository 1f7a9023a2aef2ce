package ui

import (
	"strings"
)

type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

// ButtonConfig describes a <button>.
type ButtonConfig struct {
	Variant   ButtonVariant
	Size      ButtonSize
	Type      string
	AriaLabel string
	Classes   []string
}

type ButtonOption func(*ButtonConfig)

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

// Type sets the button type attribute (default "submit").
func Type(t string) ButtonOption {
	return func(c *ButtonConfig) { c.Type = t }
}

func AriaLabel(label string) ButtonOption {
	return func(c *ButtonConfig) { c.AriaLabel = label }
}

func Class(class string) ButtonOption {
	return func(c *ButtonConfig) { c.Classes = append(c.Classes, class) }
}

func newButtonConfig(opts []ButtonOption) *ButtonConfig {
	c := &ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
		Type:    "submit",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Class returns the merged class list of the button.
func (c *ButtonConfig) Class() string {
	return CN(
		"inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
		buttonVariants(c.Variant, c.Size),
		strings.Join(c.Classes, " "),
	)
}

func buttonVariants(v ButtonVariant, s ButtonSize) string {
	var classes []string

	switch v {
	case ButtonVariantDefault:
		classes = append(classes, "bg-primary text-primary-foreground hover:bg-primary/90")
	case ButtonVariantDestructive:
		classes = append(classes, "bg-destructive text-destructive-foreground hover:bg-destructive/90")
	case ButtonVariantOutline:
		classes = append(classes, "border border-input bg-background hover:bg-accent hover:text-accent-foreground")
	case ButtonVariantSecondary:
		classes = append(classes, "bg-secondary text-secondary-foreground hover:bg-secondary/80")
	case ButtonVariantGhost:
		classes = append(classes, "hover:bg-accent hover:text-accent-foreground")
	case ButtonVariantLink:
		classes = append(classes, "text-primary underline-offset-4 hover:underline")
	}

	switch s {
	case ButtonSizeDefault:
		classes = append(classes, "h-10 px-4 py-2")
	case ButtonSizeSm:
		classes = append(classes, "h-9 rounded-md px-3")
	case ButtonSizeLg:
		classes = append(classes, "h-11 rounded-md px-8")
	case ButtonSizeIcon:
		classes = append(classes, "h-10 w-10")
	}

	return strings.Join(classes, " ")
}
