// Package polygon groups traced rings into exterior rings with holes.
//
// Containment is the crossing-number (ray casting) test applied to every
// vertex: a ring lies inside another only if all of its vertices do. This is
// exact for marching-squares output, where rings of one band never cross.
//
// Organize is incremental with re-nesting. Each pending ring either becomes a
// hole of an existing exterior or a new exterior, and in both cases every
// existing exterior it contains is dissolved and re-queued so that ring can
// become their parent. The re-nesting step runs unconditionally: a ring may be
// a hole of a larger shape and the container of a smaller one at once.
// Likewise, holes already attached to an exterior that fall inside a newly
// attached hole are re-queued as islands.
//
// Complexity: O(n²·v) for n rings of up to v vertices.
package polygon
