// Package web runs numberpop in a browser. The page supplies the canvas
// element, its 2D context, requestAnimationFrame and mousedown events.
package web
