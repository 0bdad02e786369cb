package colorsci

import "fmt"

// Vec3 is a color triple in whatever basis the caller is working in.
type Vec3 [3]float64

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// Identity is the 3x3 identity matrix.
var Identity = Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v[0] * k, v[1] * k, v[2] * k}
}

// Lerp returns v + (o-v)*t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
		v[2] + (o[2]-v[2])*t,
	}
}

func (v Vec3) Max() float64 {
	return max(v[0], v[1], v[2])
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

// Mul returns m*o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// MulVec returns m*v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m through its adjugate. A singular matrix
// yields the zero matrix.
func (m Mat3) Inverse() Mat3 {
	det := m.Det()
	if det == 0 {
		return Mat3{}
	}
	inv := 1 / det

	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}
}

func diag(v Vec3) Mat3 {
	return Mat3{
		{v[0], 0, 0},
		{0, v[1], 0},
		{0, 0, v[2]},
	}
}
