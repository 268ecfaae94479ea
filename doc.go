// Package polyfill draws filled and outlined polygons into a pixel buffer
// using integer arithmetic only.
//
// Polygons are filled with a scanline algorithm: for every row between the
// smallest and largest vertex y coordinate, the crossings of the polygon
// edges with the row are collected, sorted and paired up into spans.
// An optional hole polygon is subtracted from the fill by testing every
// candidate pixel with [Contains].  Outlines are drawn with Bresenham
// lines, see [Line].
//
// There is no anti-aliasing and no blending: every operation writes a
// single [Color] to a set of pixels of a [Canvas], in call order.
// Pixels outside the canvas are silently dropped.
package polyfill
