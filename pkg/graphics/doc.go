// Package graphics provides the small geometry and color value types shared
// by the card stack engine, its gesture recognizers and the snapshot renderer.
package graphics
