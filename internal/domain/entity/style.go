package entity

// StyleState is a visual state pushed to the rendering collaborator
// whenever a node's lifecycle changes. This replaces implicit CSS
// pseudo-class cascading with an explicit enum.
type StyleState string

const (
	StyleFloating  StyleState = "floating"
	StyleDocked    StyleState = "docked"
	StyleMaximized StyleState = "maximized"
)
