package core

// Size describes a width and height, in pixels or blocks depending on use.
type Size struct {
	W int
	H int
}
