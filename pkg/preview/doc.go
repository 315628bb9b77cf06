// Package preview draws layout snapshots as SVG or PNG images.
//
// Previews are a debugging aid for the layout engine, not a reproduction of
// the live canvas: circles, rings, keyword spokes and clamped labels are
// drawn flat on a dark background so placement problems are easy to spot.
// Both formats share one scene description and differ only in the backend,
// [github.com/ajstarks/svgo] for SVG and [git.sr.ht/~sbinet/gg] for PNG.
package preview
