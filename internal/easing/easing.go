// Package easing interpolates arc notes between their end points.
//
// The scroll axis (Y) is always interpolated linearly. Only the horizontal
// (X) and depth (Z) axes follow the easing shape.
package easing

import (
	"fmt"

	"git.lost.host/meutraa/arcview/internal/game"
	"maze.io/x/math32"
)

type Point3 struct {
	X, Y, Z float32
}

// Exact at t = 0 and t = 1.
func lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

func clamp(t float32) float32 {
	if t < 0 || t != t {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func Lerp(a, b Point3, t float32) Point3 {
	return Point3{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
	}
}

// Ease returns the point at progress t, clamped to [0, 1], of an arc going
// from start to end. It panics on an easing the parser could never produce.
func Ease(start, end Point3, t float32, kind game.Easing) Point3 {
	t = clamp(t)

	switch kind {
	case game.Linear:
		return Lerp(start, end, t)
	case game.CubicBezier:
		return cubicBezier(start, end, t)
	case game.EaseInQuarter, game.EaseOutQuarter,
		game.EaseInThenOut, game.EaseOutThenIn,
		game.EaseSiSi, game.EaseSoSo:
		return sinus(start, end, t, kind)
	}
	panic(fmt.Sprintf("easing: unknown easing %d", kind))
}

// The control points sit on start and end for X and Z, a quarter of the way
// along Y, which bends the arc into a vertical S.
func cubicBezier(p1, p2 Point3, t float32) Point3 {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	bezier := func(a, b float32) float32 {
		return mt3*a + 3*mt2*t*a + 3*mt*t2*b + t3*b
	}

	return Point3{
		X: bezier(p1.X, p2.X),
		Y: lerp(p1.Y, p2.Y, t),
		Z: bezier(p1.Z, p2.Z),
	}
}

func easeIn(t float32) float32 {
	return math32.Sin(t * math32.Pi / 2)
}

func easeOut(t float32) float32 {
	return 1 - math32.Cos(t*math32.Pi/2)
}

func sinus(p1, p2 Point3, t float32, kind game.Easing) Point3 {
	var sx, sz float32

	switch kind {
	case game.EaseInQuarter, game.EaseInThenOut, game.EaseSiSi:
		sx = easeIn(t)
	default:
		sx = easeOut(t)
	}

	switch kind {
	case game.EaseInQuarter, game.EaseOutQuarter:
		sz = t
	case game.EaseOutThenIn, game.EaseSiSi:
		sz = easeIn(t)
	default:
		sz = easeOut(t)
	}

	return Point3{
		X: lerp(p1.X, p2.X, sx),
		Y: lerp(p1.Y, p2.Y, t),
		Z: lerp(p1.Z, p2.Z, sz),
	}
}
